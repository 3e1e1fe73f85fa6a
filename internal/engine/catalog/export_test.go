package catalog

func (c *Catalog) MustRegister(name string, b Builder) {
	c.mustRegister(name, b)
}
