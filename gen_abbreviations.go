//go:build generate

// This program generates the built-in abbreviation table from
// data/abbreviations.txt. It is run by "go generate" (see doc.go).
package main

import (
	"bufio"
	"bytes"
	"errors"
	"fmt"
	"go/format"
	"log"
	"os"
	"sort"
	"strings"
)

const (
	sourceFile = "data/abbreviations.txt"
	targetFile = "abbreviations_table.go"
)

func main() {
	log.SetPrefix("gen_abbreviations: ")
	log.SetFlags(0)

	src, err := parse()
	if err != nil {
		log.Fatal(err)
	}

	// Format the Go code.
	formatted, err := format.Source([]byte(src))
	if err != nil {
		log.Fatal("gofmt:", err)
	}

	// Save it to the target file.
	log.Print("Writing to ", targetFile)
	if err := os.WriteFile(targetFile, formatted, 0644); err != nil {
		log.Fatal(err)
	}
}

func parse() (string, error) {
	log.Printf("Parsing %s", sourceFile)
	f, err := os.Open(sourceFile)
	if err != nil {
		return "", err
	}
	defer f.Close()

	seen := make(map[string]bool)
	var entries []string

	scanner := bufio.NewScanner(f)
	num := 0
	for scanner.Scan() {
		num++
		line := strings.TrimSpace(scanner.Text())

		// Skip comments and empty lines.
		if strings.HasPrefix(line, "#") || line == "" {
			continue
		}

		entry, err := parseEntry(line)
		if err != nil {
			return "", fmt.Errorf("line %d: %v", num, err)
		}
		if seen[entry] {
			continue
		}
		seen[entry] = true
		entries = append(entries, entry)
	}
	if err := scanner.Err(); err != nil {
		return "", err
	}

	// The table is searched with sort.SearchStrings.
	sort.Strings(entries)

	var buf bytes.Buffer
	buf.WriteString(`// Code generated by gen_abbreviations.go; DO NOT EDIT.

package docseg

// builtinAbbreviations is the sorted list of known abbreviations, generated
// from ` + sourceFile + `.
var builtinAbbreviations = []string{
`)
	for _, entry := range entries {
		fmt.Fprintf(&buf, "\t%q,\n", entry)
	}
	buf.WriteString("}\n")

	return buf.String(), nil
}

// parseEntry validates and normalizes one abbreviation.
func parseEntry(line string) (string, error) {
	if strings.ContainsAny(line, " \t") {
		return "", errors.New("abbreviation contains whitespace")
	}
	if !strings.HasSuffix(line, ".") {
		return "", errors.New("abbreviation must end with a period")
	}
	return strings.ToLower(line), nil
}
