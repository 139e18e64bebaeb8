package report

import (
	"fmt"
	"io"
	"strconv"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"

	"playerbench/internal/model"
)

// Players prints a ranked table of players with the sorted stat highlighted.
func Players(w io.Writer, players []model.Player, stat model.Stat) error {
	headers := []string{"#", "PLAYER", "TEAM", "PPG", "APG", "BPG", "SPG"}
	highlight := -1
	for i, s := range model.Stats {
		if s == stat {
			highlight = 3 + i
		}
	}

	rows := make([][]string, 0, len(players))
	for i, p := range players {
		rows = append(rows, []string{
			strconv.Itoa(i + 1),
			truncate(p.Name, 30),
			p.Team,
			fmt.Sprintf("%.1f", p.PointsPerGame),
			fmt.Sprintf("%.1f", p.AssistsPerGame),
			fmt.Sprintf("%.1f", p.BlocksPerGame),
			fmt.Sprintf("%.1f", p.StealsPerGame),
		})
	}

	tbl := table.New().
		Border(lipgloss.NormalBorder()).
		BorderStyle(borderStyle).
		StyleFunc(func(row, col int) lipgloss.Style {
			switch {
			case row == table.HeaderRow:
				return headerStyle
			case col == highlight:
				return cellStyle.Bold(true).Align(lipgloss.Right)
			case col == 0 || col >= 3:
				return cellStyle.Align(lipgloss.Right)
			}
			return cellStyle
		}).
		Headers(headers...).
		Rows(rows...)

	_, err := fmt.Fprintln(w, tbl.Render())
	return err
}
