package dom

import "golang.org/x/net/html"

type htmlNode struct {
	node *html.Node
}

// WrapHTML adapts a parsed x/net/html node so the owning-anchor walk can run
// against real markup. A nil input yields a nil Node.
func WrapHTML(n *html.Node) Node {
	if n == nil {
		return nil
	}
	return htmlNode{node: n}
}

func (h htmlNode) AnchorID() (string, bool) {
	if h.node.Type != html.ElementNode {
		return "", false
	}
	for _, attr := range h.node.Attr {
		if attr.Key == "id" {
			return attr.Val, true
		}
	}
	return "", false
}

func (h htmlNode) Parent() Node {
	return WrapHTML(h.node.Parent)
}
