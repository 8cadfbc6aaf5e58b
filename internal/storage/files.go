package storage

import (
	"bufio"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"
)

const maxEntries = 500

const timeLayout = "Mon Jan 2, 2006 15:04:05 MST"

// LoadTranscript reads the private message transcript from file
// Returns entries in reverse chronological order (newest first)
func LoadTranscript(dataDir string) ([]string, error) {
	path := filepath.Join(dataDir, "transcript.txt")
	lines, err := readLines(path)
	if err != nil {
		if os.IsNotExist(err) {
			return []string{}, nil
		}
		return nil, err
	}
	// Reverse so newest is first (file stores oldest first)
	return reverse(lines), nil
}

// SaveTranscript writes the transcript to file
// Expects entries in reverse chronological order (newest first)
func SaveTranscript(dataDir string, entries []string) error {
	path := filepath.Join(dataDir, "transcript.txt")
	return writeLines(path, reverse(entries))
}

// AddEntry prepends a new transcript entry (keeping newest first in memory)
func AddEntry(entries []string, entry string) []string {
	entries = append([]string{entry}, entries...)
	if len(entries) > maxEntries {
		entries = entries[:maxEntries]
	}
	return entries
}

// FormatEntry renders one transcript line. Line breaks in text are folded
// into spaces so that every entry stays on a single line.
func FormatEntry(at time.Time, from, text string) string {
	text = strings.Join(strings.Fields(text), " ")
	return fmt.Sprintf("[%s] <%s> %s", at.Format(timeLayout), from, text)
}

// MOTD is the message of the day last received from a server
type MOTD struct {
	Server  string
	Message string
}

// LoadMOTD reads the message of the day from file
func LoadMOTD(dataDir string) (*MOTD, error) {
	path := filepath.Join(dataDir, "motd.txt")
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return &MOTD{}, nil
		}
		return nil, err
	}
	content := strings.TrimRight(string(data), "\n")
	server, message, ok := strings.Cut(content, "%%")
	if !ok {
		return &MOTD{Message: content}, nil
	}
	return &MOTD{Server: server, Message: message}, nil
}

// SaveMOTD writes the message of the day to file
func SaveMOTD(dataDir string, motd *MOTD) error {
	path := filepath.Join(dataDir, "motd.txt")
	content := fmt.Sprintf("%s%%%%%s\n", motd.Server, motd.Message)
	return os.WriteFile(path, []byte(content), 0644)
}

func readLines(path string) ([]string, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer file.Close()

	var lines []string
	scanner := bufio.NewScanner(file)
	for scanner.Scan() {
		line := scanner.Text()
		if line != "" {
			lines = append(lines, line)
		}
	}
	return lines, scanner.Err()
}

func writeLines(path string, lines []string) error {
	file, err := os.Create(path)
	if err != nil {
		return err
	}
	defer file.Close()

	for _, line := range lines {
		if _, err := fmt.Fprintln(file, line); err != nil {
			return err
		}
	}
	return nil
}

func reverse(s []string) []string {
	result := make([]string, len(s))
	for i, v := range s {
		result[len(s)-1-i] = v
	}
	return result
}
