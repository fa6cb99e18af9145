package xmlcodec

import (
	"strings"

	"github.com/fatih/color"
)

type ColorAttr int

const (
	TagColor ColorAttr = iota
	AttrNameColor
	AttrValueColor
	TextColor
	DataColor
	CommentColor
	PIColor
	DeclColor
)

type Colors struct {
	Default func(string, ...any) string
	Map     map[ColorAttr]func(string, ...any) string
}

func NewColors() *Colors {
	colors := &Colors{
		Default: colorDefault,
		Map:     map[ColorAttr]func(string, ...any) string{},
	}
	colors.Map[TagColor] = color.RGB(128, 168, 196).SprintfFunc()
	colors.Map[AttrNameColor] = color.RGB(196, 96, 16).SprintfFunc()
	colors.Map[AttrValueColor] = color.RGB(8, 196, 16).SprintfFunc()
	colors.Map[TextColor] = color.RGB(198, 198, 46).SprintfFunc()
	colors.Map[DataColor] = color.RGB(88, 158, 86).SprintfFunc()
	colors.Map[CommentColor] = color.BlueString
	colors.Map[PIColor] = color.RGB(168, 0, 196).SprintfFunc()
	colors.Map[DeclColor] = color.RGB(74, 92, 138).SprintfFunc()
	for k, f := range colors.Map {
		colors.Map[k] = func(v string, _ ...any) string {
			return f(strings.Replace(v, "%", "%%", -1))
		}
	}
	return colors
}

func colorDefault(v string, _ ...any) string { return v }

func (c *Colors) Color(a ColorAttr, s string) string {
	return c.Get(a)(s)
}

func (c *Colors) Get(a ColorAttr) func(string, ...any) string {
	f := c.Map[a]
	if f == nil {
		return c.Default
	}
	return f
}
