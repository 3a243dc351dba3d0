// Package menubar renders the low-space menu in the BitBar/SwiftBar/xbar
// plugin format.
package menubar

import (
	_ "embed"
	"encoding/base64"
	"fmt"
	"strings"

	"github.com/johnmccabe/go-bitbar"

	"github.com/diskspace-io/diskspace/internal/disk"
	"github.com/diskspace-io/diskspace/internal/models"
)

//go:embed disk.png
var templateImage []byte

// Item is one line of plugin output.
type Item struct {
	Text          string
	TemplateImage []byte
	Command       []string // run via bash=/paramN= without a terminal
	Separator     bool
}

// Sep is a menu separator.
func Sep() Item {
	return Item{Separator: true}
}

// Menu is the plugin output: the menu-bar line and the dropdown rows. A menu
// without a status line prints nothing, which hides the plugin.
type Menu struct {
	Status Item
	Rows   []Item
}

// Empty reports whether the menu prints nothing.
func (m Menu) Empty() bool {
	return m.Status.Text == ""
}

// Build renders the snapshot. An empty snapshot yields an empty menu.
func Build(snap models.Snapshot, analyzer models.LaunchConfig) Menu {
	least, ok := snap.Least()
	if !ok {
		return Menu{}
	}

	menu := Menu{
		Status: Item{Text: disk.HumanBytes(least.Stats.AvailableBytes), TemplateImage: templateImage},
	}
	for _, r := range snap {
		menu.Rows = append(menu.Rows, Item{Text: disk.FormatDetail(r)})
	}
	if analyzer.Command != "" {
		menu.Rows = append(menu.Rows,
			Sep(),
			Item{Text: "Open disk analyzer", Command: append([]string{analyzer.Command}, analyzer.Args...)},
		)
	}
	return menu
}

// ErrorMenu renders err as a single line behind the template image.
func ErrorMenu(kind string, err error) Menu {
	return Menu{Status: Item{Text: fmt.Sprintf("%s error: %v", kind, err), TemplateImage: templateImage}}
}

// Plugin converts the menu into bitbar lines.
func (m Menu) Plugin() bitbar.Plugin {
	p := bitbar.New()
	if m.Empty() {
		return p
	}

	m.Status.apply(p.StatusLine(m.Status.text()))
	if len(m.Rows) == 0 {
		return p
	}

	sub := p.NewSubMenu()
	for _, item := range m.Rows {
		if item.Separator {
			sub.HR()
			continue
		}
		item.apply(sub.Line(item.text()))
	}
	return p
}

// Render prints the plugin output to stdout. An empty menu prints nothing.
func (m Menu) Render() {
	if m.Empty() {
		return
	}
	p := m.Plugin()
	p.Render()
}

// text keeps the item on one line; '|' would start the parameter list.
func (i Item) text() string {
	text := strings.ReplaceAll(i.Text, "|", "¦")
	return strings.ReplaceAll(text, "\n", " ")
}

func (i Item) apply(line *bitbar.Line) {
	if len(i.TemplateImage) > 0 {
		line.TemplateImage(base64.StdEncoding.EncodeToString(i.TemplateImage))
	}
	if len(i.Command) > 0 {
		line.Bash(i.Command[0]).Params(i.Command[1:]).Terminal(false)
	}
}
