package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/IAG-Ent/build-your-own-radar/internal/domain"
	"github.com/IAG-Ent/build-your-own-radar/internal/usecase"
)

type radarDTO struct {
	Title                 string        `json:"title"`
	Rings                 []ringDTO     `json:"rings"`
	Quadrants             []quadrantDTO `json:"quadrants"`
	CurrentSheetName      string        `json:"currentSheetName,omitempty"`
	AlternativeSheetNames []string      `json:"alternativeSheetNames,omitempty"`
}

type ringDTO struct {
	Name  string `json:"name"`
	Order int    `json:"order"`
}

type quadrantDTO struct {
	Name  string    `json:"name"`
	Blips []blipDTO `json:"blips"`
}

type blipDTO struct {
	Name        string `json:"name"`
	Ring        string `json:"ring"`
	IsNew       bool   `json:"isNew"`
	Topic       string `json:"topic,omitempty"`
	Description string `json:"description"`
}

func printResult(w io.Writer, res usecase.Result, cfg domain.Config, format string) error {
	switch format {
	case "json":
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(toDTO(res))
	case "pretty", "":
		printPretty(w, res, cfg)
		return nil
	default:
		return fmt.Errorf("unknown format %q (expected pretty|json)", format)
	}
}

func toDTO(res usecase.Result) radarDTO {
	dto := radarDTO{
		Title:                 res.Title,
		CurrentSheetName:      res.Radar.CurrentSheetName(),
		AlternativeSheetNames: res.Radar.AlternativeSheetNames(),
	}
	for _, r := range res.Radar.Rings() {
		dto.Rings = append(dto.Rings, ringDTO{Name: r.Name, Order: r.Order})
	}
	for _, q := range res.Radar.Quadrants() {
		qd := quadrantDTO{Name: q.Name, Blips: []blipDTO{}}
		for _, b := range q.Blips {
			ringName := ""
			if b.Ring != nil {
				ringName = b.Ring.Name
			}
			qd.Blips = append(qd.Blips, blipDTO{
				Name:        b.Name,
				Ring:        ringName,
				IsNew:       b.IsNew,
				Topic:       b.Topic,
				Description: b.Description,
			})
		}
		dto.Quadrants = append(dto.Quadrants, qd)
	}
	return dto
}

func printPretty(w io.Writer, res usecase.Result, cfg domain.Config) {
	title := lipgloss.NewStyle().Bold(true)
	faint := lipgloss.NewStyle().Faint(true)
	section := lipgloss.NewStyle().Bold(true).Underline(true)

	if cfg.UIRefresh2022 {
		banner := lipgloss.NewStyle().
			Padding(0, 2).
			BorderStyle(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("63"))
		fmt.Fprintln(w, banner.Render(res.Title))
	} else {
		fmt.Fprintln(w, title.Render(res.Title))
	}

	rings := res.Radar.Rings()
	names := make([]string, 0, len(rings))
	for _, r := range rings {
		names = append(names, fmt.Sprintf("%s(%d)", r.Name, r.Order))
	}
	fmt.Fprintln(w, faint.Render("Rings: "+strings.Join(names, " › ")))

	for _, q := range res.Radar.Quadrants() {
		fmt.Fprintf(w, "\n%s\n", section.Render(fmt.Sprintf("%s (%d)", q.Name, len(q.Blips))))
		for _, b := range q.Blips {
			marker := " "
			if b.IsNew {
				marker = "*"
			}
			ringName := ""
			if b.Ring != nil {
				ringName = b.Ring.Name
			}
			fmt.Fprintf(w, " %s %s [%s]\n", marker, b.Name, ringName)
		}
	}

	if alts := res.Radar.AlternativeSheetNames(); len(alts) > 1 {
		fmt.Fprintln(w, faint.Render("\nSheets: "+strings.Join(alts, ", ")))
	}
}
