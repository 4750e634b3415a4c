package tag

// CommentName is the registry name of comments.
const CommentName = "!--"

// Comment is an HTML comment. It carries no attributes.
type Comment struct {
	*Node
}

var _ Tag = (*Comment)(nil)

// NewComment creates a comment with the given content.
func NewComment(content ...any) *Comment {
	c := &Comment{Node: NewNode(CommentName, nil)}
	c.Content(content...)
	return c
}

// Render returns <!--content-->.
func (c *Comment) Render() string {
	return "<!--" + c.renderContent() + "-->"
}

// String implements fmt.Stringer.
func (c *Comment) String() string {
	return c.Render()
}

// Child appends items to the comment text.
func (c *Comment) Child(items ...any) Tag {
	c.Node.Child(items...)
	return c
}

// Alter applies the transforms to the comment text.
func (c *Comment) Alter(transforms ...ContentTransform) Tag {
	c.Node.Alter(transforms...)
	return c
}
