package ui

import (
	"fmt"
	"math/rand"
	"strings"
	"time"

	"github.com/pterm/pterm"

	"github.com/fr4nk3nst1ner/jobexplorer/internal/currency"
)

const bannerText = `
     ██╗ ██████╗ ██████╗     ███████╗██╗  ██╗██████╗ ██╗      ██████╗ ██████╗ ███████╗██████╗
     ██║██╔═══██╗██╔══██╗    ██╔════╝╚██╗██╔╝██╔══██╗██║     ██╔═══██╗██╔══██╗██╔════╝██╔══██╗
     ██║██║   ██║██████╔╝    █████╗   ╚███╔╝ ██████╔╝██║     ██║   ██║██████╔╝█████╗  ██████╔╝
██   ██║██║   ██║██╔══██╗    ██╔══╝   ██╔██╗ ██╔═══╝ ██║     ██║   ██║██╔══██╗██╔══╝  ██╔══██╗
╚█████╔╝╚██████╔╝██████╔╝    ███████╗██╔╝ ██╗██║     ███████╗╚██████╔╝██║  ██║███████╗██║  ██║
 ╚════╝  ╚═════╝ ╚═════╝     ╚══════╝╚═╝  ╚═╝╚═╝     ╚══════╝ ╚═════╝ ╚═╝  ╚═╝╚══════╝╚═╝  ╚═╝
`

// ColorizeText applies a random colour gradient to the input text
func ColorizeText(text string) string {
	random := rand.New(rand.NewSource(time.Now().UnixNano()))

	startColor := pterm.NewRGB(uint8(random.Intn(256)), uint8(random.Intn(256)), uint8(random.Intn(256)))
	endColor := pterm.NewRGB(uint8(random.Intn(256)), uint8(random.Intn(256)), uint8(random.Intn(256)))

	chars := strings.Split(text, "")
	half := float32(len(chars) / 2)
	if half == 0 {
		half = 1
	}

	var sb strings.Builder
	for i, ch := range chars {
		sb.WriteString(startColor.Fade(0, half, float32(i%int(half)), endColor).Sprint(ch))
	}
	return sb.String()
}

// PrintBanner displays the application banner
func PrintBanner(silence bool) {
	if !silence {
		fmt.Println(ColorizeText(bannerText))
	}
}

// FormatURL formats a URL, optionally as a clickable terminal hyperlink using OSC 8
func FormatURL(url string, useHyperlink bool) string {
	if !useHyperlink || url == "" {
		return url
	}
	// BEL terminator is understood by more terminals than ST
	return fmt.Sprintf("\033]8;;%s\a%s\033]8;;\a", url, "View Job")
}

// ColorizeSalary colours a formatted USD amount by band
func ColorizeSalary(salary string) string {
	if salary == "" || salary == currency.Placeholder {
		return pterm.Gray(currency.Placeholder)
	}

	value := currency.ExtractNumericValue(salary)

	switch {
	case value >= 400000:
		return pterm.Green(salary)
	case value >= 300000:
		return pterm.LightGreen(salary)
	case value >= 100000:
		return pterm.Yellow(salary)
	default:
		return pterm.Red(salary)
	}
}

// truncateString truncates s to length runes, adding "..." when it was cut
func truncateString(s string, length int) string {
	r := []rune(s)
	if len(r) <= length {
		return s
	}
	if length <= 3 {
		return string(r[:length])
	}
	return string(r[:length-3]) + "..."
}
