package main

import (
	"bufio"
	"flag"
	"fmt"
	"math"
	"os"
	"path/filepath"
	"regexp"
	"sort"
	"strconv"
	"strings"

	"github.com/IMSLEPT/quizlo/internal/config"
	"github.com/IMSLEPT/quizlo/internal/constants"
	"github.com/IMSLEPT/quizlo/internal/export"
	"github.com/IMSLEPT/quizlo/internal/extract"
	"github.com/IMSLEPT/quizlo/internal/parse"
)

const (
	ansiReset  = "\x1b[0m"
	ansiBold   = "\x1b[1m"
	ansiCyan   = "\x1b[36m"
	ansiGreen  = "\x1b[32m"
	ansiYellow = "\x1b[33m"
	ansiRed    = "\x1b[31m"
	ansiGray   = "\x1b[90m"
)

var useANSI = detectANSI()

func main() {
	defer func() {
		if r := recover(); r != nil {
			printErrorf("Unexpected error: %v\n", r)
			pauseBeforeExitOnError()
			os.Exit(1)
		}
	}()

	if err := run(); err != nil {
		printErrorf("Error: %v\n", err)
		pauseBeforeExitOnError()
		os.Exit(1)
	}
}

func run() error {
	debug := flag.Bool("debug", false, "Enable debug logs")
	input := flag.String("input", "", "Source document: pdf, html, txt file or http(s) URL")
	output := flag.String("output", "", "Output path base (extension follows the format)")
	formats := flag.String("formats", constants.DefaultFormats, "Comma-separated output formats: json, md, txt, html, pdf")
	configPath := flag.String("config", constants.DefaultConfigFile, "Noise vocabulary config file (optional)")
	flag.Parse()
	extract.SetDebug(*debug)

	printBanner()

	source := strings.TrimSpace(*input)
	if source == "" {
		reader := bufio.NewReader(os.Stdin)
		selected, err := promptSelectionWithRefresh(
			reader,
			"Available Documents",
			listSourceDocuments,
			filepath.Base,
		)
		if err != nil {
			return fmt.Errorf("failed reading document selection: %w", err)
		}
		source = selected
	}

	vocab, err := config.Load(*configPath)
	if err != nil {
		return err
	}

	printInfof("Extracting pages from %s...\n", source)
	pages, err := extract.Pages(source)
	if err != nil {
		return fmt.Errorf("extraction failed: %w", err)
	}
	printSuccessf("Extracted %d page(s).\n", len(pages))

	lines := parse.NormalizeWith(strings.Join(pages, "\n"), vocab)
	questions := parse.Parse(lines)
	if len(questions) == 0 {
		return fmt.Errorf("no questions were recovered from %s", source)
	}
	printSuccessf("Recovered %d question(s).\n", len(questions))

	outputBase := strings.TrimSpace(*output)
	if outputBase == "" {
		outputBase = defaultOutputPath(source)
	}

	var savedFiles []string
	for _, format := range strings.Split(*formats, ",") {
		format = strings.TrimSpace(strings.ToLower(format))
		if format == "" {
			continue
		}
		saved, err := export.WriteData(questions, outputBase, format)
		if err != nil {
			return fmt.Errorf("failed writing %s output: %w", format, err)
		}
		savedFiles = append(savedFiles, saved...)
	}
	if len(savedFiles) == 0 {
		return fmt.Errorf("no output formats selected")
	}

	printSuccessf("Successfully saved output: %s\n", strings.Join(savedFiles, ", "))
	return nil
}

func pauseBeforeExitOnError() {
	stat, err := os.Stdin.Stat()
	if err != nil {
		return
	}
	if (stat.Mode() & os.ModeCharDevice) == 0 {
		return
	}

	fmt.Print(style("Press Enter to close...", ansiGray))
	_, _ = bufio.NewReader(os.Stdin).ReadString('\n')
}

func listSourceDocuments() []string {
	entries, err := os.ReadDir(".")
	if err != nil {
		return nil
	}

	var docs []string
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		switch strings.ToLower(filepath.Ext(entry.Name())) {
		case ".pdf", ".html", ".htm", ".txt", ".text":
			docs = append(docs, entry.Name())
		}
	}
	sort.Strings(docs)
	return docs
}

func promptSelectionWithRefresh(
	reader *bufio.Reader,
	title string,
	loadOptions func() []string,
	formatter func(string) string,
) (string, error) {
	options := loadOptions()
	if len(options) == 0 {
		return "", fmt.Errorf("no options found for %s", title)
	}

	filter := ""
	for {
		all := make([]selectionOption, 0, len(options))
		for i, opt := range options {
			all = append(all, selectionOption{
				RawIndex: i,
				Label:    formatter(opt),
			})
		}

		filtered := filterOptions(all, filter)
		printMenuHeader(title, len(filtered), len(all), filter)
		if len(filtered) == 0 {
			printWarnf("No results for filter %q. Use / to clear.\n", filter)
		} else {
			printOptionsInColumns(filtered)
		}
		printMenuHelp()

		fmt.Print(style("Select> ", ansiBold+ansiCyan))
		raw, err := reader.ReadString('\n')
		if err != nil {
			return "", err
		}

		raw = strings.TrimSpace(raw)
		if raw == "" {
			continue
		}

		if strings.HasPrefix(raw, "/") {
			command := strings.TrimSpace(strings.TrimPrefix(raw, "/"))
			switch strings.ToLower(command) {
			case "":
				filter = ""
			case "refresh":
				printInfof("Refreshing list...\n")
				refreshed := loadOptions()
				if len(refreshed) == 0 {
					printWarnf("Refresh returned no results. Keeping current list.\n")
				} else {
					options = refreshed
					filter = ""
					printSuccessf("List refreshed. %d option(s) available.\n", len(options))
				}
			default:
				filter = command
			}
			continue
		}

		choice, err := strconv.Atoi(raw)
		if err != nil || choice < 1 || choice > len(filtered) {
			printWarnf("Invalid selection. Please enter a valid number.\n")
			continue
		}

		return options[filtered[choice-1].RawIndex], nil
	}
}

type selectionOption struct {
	RawIndex int
	Label    string
}

func filterOptions(options []selectionOption, filter string) []selectionOption {
	if strings.TrimSpace(filter) == "" {
		return options
	}

	filter = strings.ToLower(strings.TrimSpace(filter))
	filtered := make([]selectionOption, 0, len(options))
	for _, opt := range options {
		if strings.Contains(strings.ToLower(opt.Label), filter) {
			filtered = append(filtered, opt)
		}
	}
	return filtered
}

func printOptionsInColumns(options []selectionOption) {
	if len(options) == 0 {
		return
	}

	lines := make([]string, 0, len(options))
	maxWidth := 0
	for i, opt := range options {
		line := fmt.Sprintf("%3d. %s", i+1, strings.TrimSpace(opt.Label))
		lines = append(lines, line)
		if len(line) > maxWidth {
			maxWidth = len(line)
		}
	}

	colWidth := maxWidth + 4
	if colWidth < 24 {
		colWidth = 24
	}
	targetWidth := 120
	cols := targetWidth / colWidth
	if cols < 1 {
		cols = 1
	}
	if cols > 4 {
		cols = 4
	}

	rows := int(math.Ceil(float64(len(lines)) / float64(cols)))
	for r := 0; r < rows; r++ {
		var row strings.Builder
		for c := 0; c < cols; c++ {
			idx := c*rows + r
			if idx >= len(lines) {
				continue
			}
			if c > 0 {
				row.WriteString("  ")
			}
			row.WriteString(style(fmt.Sprintf("%-*s", colWidth, lines[idx]), ansiCyan))
		}
		fmt.Println(strings.TrimRight(row.String(), " "))
	}
}

func printBanner() {
	fmt.Println(style(strings.Repeat("=", 64), ansiGray))
	fmt.Println(style(" Quizlo - Scanned Question Bank Parser", ansiBold+ansiCyan))
	fmt.Println(style(strings.Repeat("=", 64), ansiGray))
	fmt.Println()
}

func printSection(title string) {
	fmt.Println()
	fmt.Println(style(strings.Repeat("-", 64), ansiGray))
	fmt.Println(style(" "+title, ansiBold+ansiCyan))
	fmt.Println(style(strings.Repeat("-", 64), ansiGray))
}

func printMenuHeader(title string, shown int, total int, filter string) {
	printSection(title)
	fmt.Println(style(fmt.Sprintf(" Showing %d of %d", shown, total), ansiGray))
	if strings.TrimSpace(filter) != "" {
		fmt.Println(style(fmt.Sprintf(" Filter: %q", filter), ansiYellow))
	}
	fmt.Println()
}

func printMenuHelp() {
	fmt.Println(style(" Commands: [number] select | /text filter | / clear | /refresh rescan", ansiGray))
}

func printInfof(format string, args ...any) {
	fmt.Printf(style("[INFO] ", ansiCyan)+format, args...)
}

func printSuccessf(format string, args ...any) {
	fmt.Printf(style("[OK] ", ansiGreen)+format, args...)
}

func printWarnf(format string, args ...any) {
	fmt.Printf(style("[WARN] ", ansiYellow)+format, args...)
}

func printErrorf(format string, args ...any) {
	fmt.Printf(style("[ERROR] ", ansiRed)+format, args...)
}

func style(text string, code string) string {
	if !useANSI || text == "" {
		return text
	}
	return code + text + ansiReset
}

func detectANSI() bool {
	stat, err := os.Stdout.Stat()
	if err != nil {
		return false
	}
	if (stat.Mode() & os.ModeCharDevice) == 0 {
		return false
	}
	if strings.EqualFold(strings.TrimSpace(os.Getenv("NO_COLOR")), "1") {
		return false
	}
	term := strings.TrimSpace(strings.ToLower(os.Getenv("TERM")))
	if term == "dumb" {
		return false
	}
	return true
}

func defaultOutputPath(source string) string {
	base := filepath.Base(source)
	base = strings.TrimSuffix(base, filepath.Ext(base))
	base = sanitizeFilenameSegment(base)
	if base == "" {
		base = "quizlo"
	}

	return base + "_questions"
}

func sanitizeFilenameSegment(input string) string {
	segment := strings.TrimSpace(strings.ToLower(input))
	if segment == "" {
		return ""
	}

	segment = strings.ReplaceAll(segment, " ", "-")
	invalidChars := regexp.MustCompile(`[^a-z0-9._-]+`)
	segment = invalidChars.ReplaceAllString(segment, "-")
	segment = strings.Trim(segment, "-._")

	return segment
}
