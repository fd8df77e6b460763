package views

import (
	"fmt"
	"strings"

	"transferlist/internal/domain"
)

// Summary lists the items of both sides, one "Label (value)" per line
func Summary(value domain.Value, titles [2]string) string {
	var b strings.Builder
	for i, side := range domain.Sides {
		if i > 0 {
			b.WriteString("\n")
		}
		fmt.Fprintf(&b, "%s:\n", summaryHeading(side, titles))
		items := value.Side(side)
		if len(items) == 0 {
			b.WriteString("  (empty)\n")
			continue
		}
		for _, item := range items {
			fmt.Fprintf(&b, "  %s (%s)\n", item.Label, item.Value)
		}
	}
	return b.String()
}

func summaryHeading(side domain.Side, titles [2]string) string {
	if t := titles[side.Index()]; t != "" {
		return "Items in " + strings.ToLower(t)
	}
	return "Items in " + side.String() + " list"
}
