package web

import (
	"fmt"
	"io"

	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"

	"cftracker/internal/domain/model"
)

// renderProblemList writes the detail panel shown when a bar is clicked.
func renderProblemList(w io.Writer, label string, refs []model.ProblemRef) error {
	root := element(atom.Div, "details")
	if len(refs) == 0 {
		root.AppendChild(text(fmt.Sprintf("No problems with rating %s found.", label)))
		return html.Render(w, root)
	}

	heading := element(atom.H3, "")
	heading.AppendChild(text("Problems with Rating " + label))
	root.AppendChild(heading)

	for _, ref := range refs {
		link := element(atom.A, "problem-title")
		link.Attr = append(link.Attr,
			html.Attribute{Key: "href", Val: ref.Link},
			html.Attribute{Key: "target", Val: "_blank"},
			html.Attribute{Key: "rel", Val: "noopener"},
		)
		link.AppendChild(text(ref.Name))

		item := element(atom.Div, "problem")
		item.AppendChild(link)
		root.AppendChild(item)
	}
	return html.Render(w, root)
}

func element(a atom.Atom, class string) *html.Node {
	n := &html.Node{Type: html.ElementNode, DataAtom: a, Data: a.String()}
	if class != "" {
		n.Attr = []html.Attribute{{Key: "class", Val: class}}
	}
	return n
}

func text(s string) *html.Node {
	return &html.Node{Type: html.TextNode, Data: s}
}
