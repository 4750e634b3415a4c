package tag

// Raw is markup that renders verbatim. It is used for content that was
// already rendered, such as imported state. Never wrap untrusted input.
type Raw string

// Render returns r unchanged.
func (r Raw) Render() string {
	return string(r)
}

// String implements fmt.Stringer.
func (r Raw) String() string {
	return string(r)
}
