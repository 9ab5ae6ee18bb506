package rosterfile

import (
	"bufio"
	"bytes"
	"context"
	"fmt"
	"os"
	"strconv"

	"github.com/cetteup/puppybowl/internal"
	"github.com/cetteup/puppybowl/internal/domain/player"
)

const (
	separator = '\t'
	comment   = '#'
)

// Entry A single roster file line in the format name<TAB>breed<TAB>imageURL[<TAB>teamID[<TAB>status]]
type Entry struct {
	Name     string
	Breed    string
	ImageURL string
	TeamID   *int
	Status   player.Status
}

func (e *Entry) UnmarshalText(text []byte) error {
	fields := bytes.Split(text, []byte{separator})
	if len(fields) < 3 || len(fields) > 5 {
		return fmt.Errorf("invalid roster line, expected 3 to 5 fields, got %d", len(fields))
	}

	name := string(bytes.TrimSpace(fields[0]))
	breed := string(bytes.TrimSpace(fields[1]))
	if name == "" || breed == "" {
		return fmt.Errorf("invalid roster line, name and breed are required")
	}

	entry := Entry{
		Name:     name,
		Breed:    breed,
		ImageURL: string(bytes.TrimSpace(fields[2])),
	}

	if len(fields) > 3 {
		if raw := bytes.TrimSpace(fields[3]); len(raw) > 0 {
			teamID, err := strconv.Atoi(string(raw))
			if err != nil {
				return fmt.Errorf("invalid team id %q: %w", raw, err)
			}
			entry.TeamID = internal.ToPointer(teamID)
		}
	}

	if len(fields) > 4 {
		if err := entry.Status.UnmarshalText(bytes.TrimSpace(fields[4])); err != nil {
			return err
		}
	}

	*e = entry
	return nil
}

func (e Entry) Draft() player.Draft {
	return player.Draft{
		Name:     e.Name,
		Breed:    e.Breed,
		Status:   e.Status,
		ImageURL: e.ImageURL,
		TeamID:   e.TeamID,
	}
}

// LoadPlayersFromFile Calls cb for every entry in the file, skipping blank and comment lines
func LoadPlayersFromFile(ctx context.Context, name string, cb func(ctx context.Context, e Entry) error) error {
	file, err := os.Open(name)
	if err != nil {
		return err
	}
	defer func() { _ = file.Close() }()

	scanner := bufio.NewScanner(file)
	line := 0
	for scanner.Scan() {
		line++
		if err2 := ctx.Err(); err2 != nil {
			return err2
		}

		text := bytes.TrimRight(scanner.Bytes(), "\r")
		if len(bytes.TrimSpace(text)) == 0 || text[0] == comment {
			continue
		}

		var entry Entry
		if err2 := entry.UnmarshalText(text); err2 != nil {
			return fmt.Errorf("line %d: %w", line, err2)
		}

		if err2 := cb(ctx, entry); err2 != nil {
			return err2
		}
	}

	return scanner.Err()
}
