package bot

import (
	"fmt"
	"strings"

	"github.com/duskpine/leaguebot/internal/schedule"
)

// parseMatchTuples parses the bulk add format: one or more bracketed
// tuples of single-quoted fields, e.g.
//
//	['1','January 12, 2026','Fire Ants','Leopards'] ['1','January 12, 2026','Bears','Wolves','room','pass']
//
// Room name and password are optional per tuple. Commas inside quoted
// fields (the date) are preserved.
func parseMatchTuples(input string) ([]schedule.InsertMatchInput, error) {
	var inputs []schedule.InsertMatchInput

	rest := input
	for {
		open := strings.IndexByte(rest, '[')
		if open < 0 {
			break
		}
		close := strings.IndexByte(rest[open:], ']')
		if close < 0 {
			return nil, fmt.Errorf("unterminated match tuple near %q", rest[open:])
		}
		tuple := rest[open+1 : open+close]
		rest = rest[open+close+1:]

		fields, err := parseQuotedFields(tuple)
		if err != nil {
			return nil, err
		}
		if len(fields) < 4 || len(fields) > 6 {
			return nil, fmt.Errorf("match tuple must have 4 to 6 fields, got %d", len(fields))
		}

		in := schedule.InsertMatchInput{
			MatchDay:  fields[0],
			MatchDate: fields[1],
			Home:      fields[2],
			Away:      fields[3],
		}
		if len(fields) >= 5 {
			in.RoomName = fields[4]
		}
		if len(fields) == 6 {
			in.RoomPass = fields[5]
		}
		inputs = append(inputs, in)
	}

	if len(inputs) == 0 {
		return nil, fmt.Errorf("no match tuples found")
	}
	return inputs, nil
}

func parseQuotedFields(tuple string) ([]string, error) {
	var fields []string
	i := 0
	for i < len(tuple) {
		switch tuple[i] {
		case '\'', '"':
			quote := tuple[i]
			end := strings.IndexByte(tuple[i+1:], quote)
			if end < 0 {
				return nil, fmt.Errorf("unterminated quote in match tuple %q", tuple)
			}
			fields = append(fields, tuple[i+1:i+1+end])
			i += end + 2
		case ',', ' ', '\t':
			i++
		default:
			return nil, fmt.Errorf("unexpected character %q in match tuple %q", tuple[i], tuple)
		}
	}
	return fields, nil
}
