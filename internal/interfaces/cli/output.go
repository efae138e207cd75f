package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"status-timeline/internal/domain"
	"strings"
	"text/tabwriter"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/goccy/go-yaml"
)

// historyGlyphs draws one character per day in text output
var historyGlyphs = map[domain.Variant]rune{
	domain.VariantSuccess:  '+',
	domain.VariantDegraded: '~',
	domain.VariantError:    'x',
	domain.VariantInfo:     'm',
	domain.VariantEmpty:    '.',
}

func writePage(w io.Writer, page *domain.PageTimeline, format string) error {
	switch strings.ToLower(format) {
	case "yaml":
		b, err := yaml.Marshal(page)
		if err != nil {
			return fmt.Errorf("failed to encode yaml: %w", err)
		}
		_, err = w.Write(b)
		return err
	case "text":
		return writeText(w, page)
	default:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(page)
	}
}

func writeText(w io.Writer, page *domain.PageTimeline) error {
	fmt.Fprintf(w, "Status: %s  Uptime: %s  Window: %d days  Bar: %s  Card: %s\n",
		page.Status, page.Uptime, page.WindowDays, page.Config.BarType, page.Config.CardType)
	fmt.Fprintf(w, "Generated %s (run %s)\n\n", page.GeneratedAt.Format(time.RFC3339), page.RunID)

	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "MONITOR\tUPTIME\tTODAY\tREQUESTS\tEVENTS\tHISTORY")
	for _, m := range page.Monitors {
		today := domain.VariantEmpty
		if latest, ok := m.Latest(); ok {
			today = latest.Status()
		}
		fmt.Fprintf(tw, "%s\t%s\t%s\t%s\t%d\t%s\n",
			m.Name, m.Uptime, today, humanize.Comma(m.Requests), eventCount(m), history(m))
	}
	return tw.Flush()
}

// writeUptimes prints tab separated name/uptime lines, the page last
func writeUptimes(w io.Writer, page *domain.PageTimeline) error {
	for _, m := range page.Monitors {
		if _, err := fmt.Fprintf(w, "%s\t%s\n", m.Name, m.Uptime); err != nil {
			return err
		}
	}
	_, err := fmt.Fprintf(w, "page\t%s\n", page.Uptime)
	return err
}

// eventCount counts distinct events over the window
func eventCount(m domain.MonitorTimeline) int {
	type key struct {
		t  domain.EventType
		id int64
	}
	seen := make(map[key]struct{})
	for _, d := range m.Data {
		for _, e := range d.Events {
			seen[key{e.Type, e.ID}] = struct{}{}
		}
	}
	return len(seen)
}

func history(m domain.MonitorTimeline) string {
	var b strings.Builder
	for _, d := range m.Data {
		glyph, ok := historyGlyphs[d.Status()]
		if !ok {
			glyph = '?'
		}
		b.WriteRune(glyph)
	}
	return b.String()
}
