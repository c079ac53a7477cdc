package pipeline

import (
	"github.com/matzehuels/drehfreudig/pkg/config"
	"github.com/matzehuels/drehfreudig/pkg/drehfreudig"
	"github.com/matzehuels/drehfreudig/pkg/render/text"
	"github.com/matzehuels/drehfreudig/pkg/tree"
)

// ShouldRender applies the render policy to a check result. In auto mode
// only drehfreudig trees are drawn.
func ShouldRender(mode string, res *drehfreudig.Result) bool {
	if res == nil {
		return false
	}
	switch mode {
	case config.RenderAlways:
		return true
	case config.RenderNever:
		return false
	default:
		return res.IsDrehfreudig
	}
}

// renderLines draws root when the policy asks for it. Trees wider than
// maxWidth are not drawn and yield an error coded RENDER_TOO_WIDE.
func renderLines(mode string, maxWidth int, root *tree.Node, res *drehfreudig.Result) ([]string, error) {
	if !ShouldRender(mode, res) {
		return nil, nil
	}
	return text.RenderWithLimit(root, maxWidth)
}
