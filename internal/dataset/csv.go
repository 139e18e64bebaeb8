package dataset

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"playerbench/internal/model"
)

// Header is the column layout written by WriteCSV.
var Header = []string{"Player", "Tm", "PTS", "AST", "BLK", "STL"}

// LoadCSV reads players from a stats export on disk.
func LoadCSV(path string) ([]model.Player, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open %s: %w", path, err)
	}
	defer f.Close()

	players, err := ReadCSV(f)
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", path, err)
	}
	return players, nil
}

// ReadCSV parses a stats table. Column names are matched case-insensitively;
// only Player, Tm, PTS, AST, BLK and STL are used. Rows without a player name
// are skipped and unparseable numbers count as zero.
func ReadCSV(r io.Reader) ([]model.Player, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1
	reader.TrimLeadingSpace = true

	header, err := reader.Read()
	if err != nil {
		if errors.Is(err, io.EOF) {
			return []model.Player{}, nil
		}
		return nil, fmt.Errorf("failed to read header: %w", err)
	}

	columns := make(map[string]int, len(header))
	for i, name := range header {
		columns[strings.ToLower(strings.TrimSpace(name))] = i
	}
	if _, ok := columns["player"]; !ok {
		return nil, fmt.Errorf("missing %q column", "Player")
	}

	field := func(row []string, name string) string {
		i, ok := columns[name]
		if !ok || i >= len(row) {
			return ""
		}
		return strings.TrimSpace(row[i])
	}

	players := []model.Player{}
	for line := 2; ; line++ {
		row, err := reader.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("line %d: %w", line, err)
		}

		name := field(row, "player")
		if name == "" {
			continue
		}

		p, err := model.NewPlayer(
			name,
			field(row, "tm"),
			toFloat(field(row, "pts")),
			toFloat(field(row, "ast")),
			toFloat(field(row, "blk")),
			toFloat(field(row, "stl")),
		)
		if err != nil {
			return nil, fmt.Errorf("line %d: %w", line, err)
		}
		players = append(players, p)
	}
	return players, nil
}

// WriteCSV writes players in the layout ReadCSV expects.
func WriteCSV(w io.Writer, players []model.Player) error {
	writer := csv.NewWriter(w)
	if err := writer.Write(Header); err != nil {
		return err
	}
	for _, p := range players {
		row := []string{
			p.Name,
			p.Team,
			formatStat(p.PointsPerGame),
			formatStat(p.AssistsPerGame),
			formatStat(p.BlocksPerGame),
			formatStat(p.StealsPerGame),
		}
		if err := writer.Write(row); err != nil {
			return err
		}
	}
	writer.Flush()
	return writer.Error()
}

func toFloat(s string) float64 {
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0
	}
	return v
}

func formatStat(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
