package catalog

import "go.trai.ch/cgraph/internal/core/domain"

var builtins = map[string]Builder{
	"wave":    buildWave,
	"sum":     buildSum,
	"product": buildProduct,
	"cube":    buildCube,
	"sine":    buildSine,
}

// buildWave assembles y = x1 + x2 * sin(x2 + x3 ** 3).
func buildWave() (*domain.Graph, error) {
	g := domain.NewGraph("wave")
	in, err := addInputs(g, "x1", "x2", "x3")
	if err != nil {
		return nil, err
	}
	x1, x2, x3 := in[0], in[1], in[2]

	pow, err := g.Label("pow", domain.Power(x3, 3))
	if err != nil {
		return nil, err
	}
	add, err := g.Label("add", domain.Add(x2, pow))
	if err != nil {
		return nil, err
	}
	sin, err := g.Label("sin", domain.Sine(add))
	if err != nil {
		return nil, err
	}
	mul, err := g.Label("mul", domain.Multiply(x2, sin))
	if err != nil {
		return nil, err
	}
	root, err := g.Label("root", domain.Add(x1, mul))
	if err != nil {
		return nil, err
	}
	g.SetRoot(root)
	return g, nil
}

func buildSum() (*domain.Graph, error) {
	return binary("sum", domain.Add)
}

func buildProduct() (*domain.Graph, error) {
	return binary("product", domain.Multiply)
}

func buildCube() (*domain.Graph, error) {
	return unary("cube", func(x domain.Node) *domain.Operator {
		return domain.Power(x, 3)
	})
}

func buildSine() (*domain.Graph, error) {
	return unary("sine", domain.Sine)
}

func binary(name string, op func(args ...domain.Node) *domain.Operator) (*domain.Graph, error) {
	g := domain.NewGraph(name)
	in, err := addInputs(g, "a", "b")
	if err != nil {
		return nil, err
	}
	root, err := g.Label("root", op(in[0], in[1]))
	if err != nil {
		return nil, err
	}
	g.SetRoot(root)
	return g, nil
}

func unary(name string, op func(domain.Node) *domain.Operator) (*domain.Graph, error) {
	g := domain.NewGraph(name)
	in, err := addInputs(g, "x")
	if err != nil {
		return nil, err
	}
	root, err := g.Label("root", op(in[0]))
	if err != nil {
		return nil, err
	}
	g.SetRoot(root)
	return g, nil
}

func addInputs(g *domain.Graph, names ...string) ([]domain.Node, error) {
	nodes := make([]domain.Node, 0, len(names))
	for _, name := range names {
		in, err := g.AddInput(name)
		if err != nil {
			return nil, err
		}
		nodes = append(nodes, in)
	}
	return nodes, nil
}
