package view

import (
	"context"
	"io"

	"github.com/a-h/templ"
	g "maragu.dev/gomponents"
)

type nodeComponent struct {
	node g.Node
}

func (a nodeComponent) Render(ctx context.Context, w io.Writer) error {
	if a.node == nil {
		return nil
	}
	return a.node.Render(w)
}

// NodeToTempl lets a gomponents node be rendered inside a templ component.
func NodeToTempl(node g.Node) templ.Component {
	return nodeComponent{node: node}
}

type templNode struct {
	ctx       context.Context
	component templ.Component
}

func (a templNode) Render(w io.Writer) error {
	return a.component.Render(a.ctx, w)
}

// TemplToNode lets a templ component be placed in a gomponents tree. ctx is
// passed to the component since gomponents renders without one.
func TemplToNode(ctx context.Context, component templ.Component) g.Node {
	return templNode{ctx: ctx, component: component}
}
