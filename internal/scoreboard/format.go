package scoreboard

import "strings"

// Renderer turns normalized games into display lines using format templates.
// Templates contain {field} placeholders and optional [group] sections; a
// group is dropped from the output when any placeholder inside it renders
// empty, so "(Final[/{extra_innings}])" shows "(Final)" for nine-inning games
// and "(Final/11)" for extras.
type Renderer struct {
	Format        string
	FormatNoGames string
	StatusFormats map[Status]string
	Fields        FieldOptions
}

// Lines renders one display line per game, or the no-games line when the
// slice is empty.
func (r Renderer) Lines(games []Game) []string {
	if len(games) == 0 {
		return []string{r.FormatNoGames}
	}
	lines := make([]string, 0, len(games))
	for _, g := range games {
		lines = append(lines, r.Line(g))
	}
	return lines
}

// Line renders a single game.
func (r Renderer) Line(g Game) string {
	fields := g.Fields(r.Fields)
	fields["game_status"] = RenderTemplate(r.statusFormat(g.Status), fields)
	return RenderTemplate(r.Format, fields)
}

func (r Renderer) statusFormat(status Status) string {
	if tmpl, ok := r.StatusFormats[status]; ok {
		return tmpl
	}
	// Unknown statuses classify as pregame upstream; mirror that here.
	return r.StatusFormats[StatusPregame]
}

// RenderTemplate substitutes {field} placeholders from fields and resolves
// optional [group] sections. Unknown placeholders render empty. Groups nest;
// a dropped inner group does not suppress its parent.
func RenderTemplate(template string, fields map[string]string) string {
	out, _, _ := renderSegment(template, 0, fields, false)
	return out
}

// renderSegment renders template starting at pos until the end of input or,
// when inGroup is set, the matching close bracket. It reports the rendered
// text, the resume position, and whether any placeholder rendered empty.
func renderSegment(template string, pos int, fields map[string]string, inGroup bool) (string, int, bool) {
	var b strings.Builder
	anyEmpty := false

	for pos < len(template) {
		switch template[pos] {
		case '{':
			end := strings.IndexByte(template[pos:], '}')
			if end < 0 {
				// Unterminated placeholder renders literally.
				b.WriteString(template[pos:])
				return b.String(), len(template), anyEmpty
			}
			name := template[pos+1 : pos+end]
			value := fields[name]
			if value == "" {
				anyEmpty = true
			}
			b.WriteString(value)
			pos += end + 1
		case '[':
			sub, next, subEmpty := renderSegment(template, pos+1, fields, true)
			if !subEmpty {
				b.WriteString(sub)
			}
			pos = next
		case ']':
			if inGroup {
				return b.String(), pos + 1, anyEmpty
			}
			// Stray close bracket renders literally.
			b.WriteByte(']')
			pos++
		default:
			b.WriteByte(template[pos])
			pos++
		}
	}

	return b.String(), pos, anyEmpty
}
