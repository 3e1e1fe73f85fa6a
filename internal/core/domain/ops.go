package domain

import "math"

var (
	// AddFunc sums its arguments.
	AddFunc = Func{
		Name:  "add",
		Arity: Variadic,
		Apply: func(args, _ []float64) float64 {
			sum := 0.0
			for _, v := range args {
				sum += v
			}
			return sum
		},
	}

	// MultiplyFunc multiplies its arguments.
	MultiplyFunc = Func{
		Name:  "mul",
		Arity: Variadic,
		Apply: func(args, _ []float64) float64 {
			product := 1.0
			for _, v := range args {
				product *= v
			}
			return product
		},
	}

	// PowerFunc raises its argument to the fixed exponent.
	PowerFunc = Func{
		Name:   "pow",
		Arity:  1,
		Params: 1,
		Apply: func(args, params []float64) float64 {
			return math.Pow(args[0], params[0])
		},
	}

	// SineFunc takes the sine of its argument in radians.
	SineFunc = Func{
		Name:  "sin",
		Arity: 1,
		Apply: func(args, _ []float64) float64 {
			return math.Sin(args[0])
		},
	}
)

// Add returns a node summing args.
func Add(args ...Node) *Operator {
	return mustOperator(NewOperator(AddFunc, nil, args...))
}

// Multiply returns a node multiplying args.
func Multiply(args ...Node) *Operator {
	return mustOperator(NewOperator(MultiplyFunc, nil, args...))
}

// Power returns a node raising arg to exponent.
// The exponent is fixed for the node's lifetime.
func Power(arg Node, exponent float64) *Operator {
	return mustOperator(NewOperator(PowerFunc, []float64{exponent}, arg))
}

// Sine returns a node computing sin(arg).
func Sine(arg Node) *Operator {
	return mustOperator(NewOperator(SineFunc, nil, arg))
}

// Round rounds x to the given number of decimal places.
// Values too large to scale have no fractional digits and are returned as is.
func Round(x float64, precision int) float64 {
	m := math.Pow(10, float64(precision))
	scaled := x * m
	if math.IsInf(scaled, 0) {
		return x
	}
	return math.Round(scaled) / m
}
