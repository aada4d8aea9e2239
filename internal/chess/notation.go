package chess

import (
	"strconv"
	"strings"
)

// ParseMove reads "b2 b3" (file+rank) or "6,1 5,1" (row,col) into a pair of
// positions. Numeric pairs are not range checked; the board rejects them.
func ParseMove(input string) (from, to Position, err error) {
	parts := strings.Fields(input)
	if len(parts) != 2 {
		return Position{}, Position{}, ErrInvalidInputFormat
	}
	if from, err = parseSquare(parts[0]); err != nil {
		return Position{}, Position{}, err
	}
	if to, err = parseSquare(parts[1]); err != nil {
		return Position{}, Position{}, err
	}
	return from, to, nil
}

func parseSquare(token string) (Position, error) {
	if strings.Contains(token, ",") {
		return parseNumeric(token)
	}
	return parseAlgebraic(token)
}

func parseNumeric(token string) (Position, error) {
	fields := strings.Split(token, ",")
	if len(fields) != 2 {
		return Position{}, ErrInvalidInputFormat
	}
	row, err := strconv.Atoi(strings.TrimSpace(fields[0]))
	if err != nil {
		return Position{}, ErrInvalidInputFormat
	}
	col, err := strconv.Atoi(strings.TrimSpace(fields[1]))
	if err != nil {
		return Position{}, ErrInvalidInputFormat
	}
	return Position{Row: row, Col: col}, nil
}

func parseAlgebraic(token string) (Position, error) {
	token = strings.ToLower(token)
	if len(token) != 2 {
		return Position{}, ErrInvalidInputFormat
	}
	file, rank := token[0], token[1]
	if file < 'a' || file > 'h' || rank < '1' || rank > '8' {
		return Position{}, ErrInvalidInputFormat
	}
	return Position{Row: BoardSize - int(rank-'0'), Col: int(file - 'a')}, nil
}
