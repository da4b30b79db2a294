// Package main is an interactive demo of CJK-aware thing selection.
//
// The demo opens a tcell screen over a small mixed CJK/Latin buffer and
// drives the movement engine through a reference host. Word movement and
// marking follow segment boundaries inside CJK runs; everything else uses
// the generic steppers.
//
// Keys:
//
//	w b      move forward/backward one word
//	) (      move forward/backward one sentence
//	} {      move forward/backward one paragraph
//	j k      move forward/backward one line
//	1-9      set a repeat count for the next movement
//	m        mark the thing at the cursor (word)
//	s        mark the symbol at the cursor
//	. ,      replay the last movement one step forward/backward
//	o        toggle the override on or off
//	Esc      clear the selection
//	q        quit
package main

import (
	"flag"
	"fmt"
	"os"
	"path/filepath"

	"github.com/gdamore/tcell/v2"
	"github.com/mattn/go-runewidth"

	"github.com/dshills/cjkmark/internal/config"
	"github.com/dshills/cjkmark/internal/engine"
	"github.com/dshills/cjkmark/internal/host"
	"github.com/dshills/cjkmark/internal/override"
	"github.com/dshills/cjkmark/internal/segment"
	"github.com/dshills/cjkmark/internal/textspan"
	"github.com/dshills/cjkmark/internal/thing"
)

const sampleText = "The quick brown fox jumps over the lazy dog.\n" +
	"中文分词不以空格为界，需要按语义单位切分。\n" +
	"日本語のテキストも同様に、単語の境界が明示されません。\n" +
	"\n" +
	"Mixed text like GoLang和Go语言works too.\n"

func main() {
	os.Exit(run())
}

func run() int {
	configPath := flag.String("config", "", "path to a TOML or JSON thing configuration file")
	extPath := flag.String("ext", "", "path to a Lua extension script")
	filePath := flag.String("file", "", "text file to open instead of the sample buffer")
	flag.Parse()

	text := sampleText
	if *filePath != "" {
		data, err := os.ReadFile(*filePath)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: reading %s: %v\n", *filePath, err)
			return 1
		}
		text = string(data)
	}

	things := thing.NewRegistry()
	if err := loadConfig(*configPath, *extPath, things); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return 1
	}

	h := host.NewTextHost(text)
	eng, err := engine.New(engine.Config{
		Buffer:   h,
		Source:   segment.NewWords(),
		Stepper:  h,
		Realizer: h,
		Search:   h,
		Overlay:  h,
		Things:   things,
	})
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return 1
	}

	capability := override.New(h, eng.EntryPoints())
	if err := capability.Install(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return 1
	}

	screen, err := tcell.NewScreen()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: creating screen: %v\n", err)
		return 1
	}
	if err := screen.Init(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: initializing screen: %v\n", err)
		return 1
	}
	defer screen.Fini()

	loop(screen, h, capability)
	return 0
}

// loadConfig applies the optional configuration file and Lua extension.
func loadConfig(configPath, extPath string, things *thing.Registry) error {
	if configPath != "" {
		var loader config.FileLoader
		if filepath.Ext(configPath) == ".json" {
			loader = config.NewJSONLoader(configPath)
		} else {
			loader = config.NewTOMLLoader(configPath)
		}
		cfg, err := loader.Load()
		if err != nil {
			return err
		}
		if err := cfg.Apply(things); err != nil {
			return err
		}
	}
	if extPath != "" {
		if err := config.NewLuaExtension(things).RunFile(extPath); err != nil {
			return err
		}
	}
	return nil
}

// loop runs the event loop until quit.
func loop(screen tcell.Screen, h *host.TextHost, capability *override.Capability) {
	count := 0
	for {
		draw(screen, h, capability, count)

		ev := screen.PollEvent()
		key, ok := ev.(*tcell.EventKey)
		if !ok {
			continue
		}

		if key.Key() == tcell.KeyEscape {
			h.Clear()
			count = 0
			continue
		}
		if key.Key() == tcell.KeyCtrlC {
			return
		}

		r := key.Rune()
		if r >= '1' && r <= '9' {
			count = count*10 + int(r-'0')
			continue
		}

		n := 1
		if count > 0 {
			n = count
		}
		count = 0

		switch r {
		case 'q':
			return
		case 'o':
			if capability.Installed() {
				capability.Uninstall()
			} else {
				_ = capability.Install()
			}
		case 'w':
			_ = h.NextThing(thing.Word, thing.Word, n)
		case 'b':
			_ = h.NextThing(thing.Word, thing.Word, -n)
		case ')':
			_ = h.NextThing(thing.Sentence, thing.Sentence, n)
		case '(':
			_ = h.NextThing(thing.Sentence, thing.Sentence, -n)
		case '}':
			_ = h.NextThing(thing.Paragraph, thing.Paragraph, n)
		case '{':
			_ = h.NextThing(thing.Paragraph, thing.Paragraph, -n)
		case 'j':
			_ = h.NextThing(thing.Line, thing.Line, n)
		case 'k':
			_ = h.NextThing(thing.Line, thing.Line, -n)
		case 'm':
			_ = h.MarkThing(thing.Word, thing.Word, false, "")
		case 's':
			_ = h.MarkThing(thing.Symbol, thing.Symbol, false, "%s")
		case '.':
			if _, forward := h.RepeatSteps(); forward != nil {
				forward()
			}
		case ',':
			if backward, _ := h.RepeatSteps(); backward != nil {
				backward()
			}
		}
	}
}

// draw renders the buffer, selection, highlights, and status line.
func draw(screen tcell.Screen, h *host.TextHost, capability *override.Capability, count int) {
	screen.Clear()

	text := h.Text()
	cursor := h.Cursor()
	selected := spanSet(h)
	matches := h.Matches()

	x, y := 0, 0
	for i, r := range text {
		if r == '\n' {
			x = 0
			y++
			continue
		}

		style := tcell.StyleDefault
		pos := textspan.Pos(i)
		for _, m := range matches {
			if m.Contains(pos) {
				style = style.Underline(true)
				break
			}
		}
		if selected.Contains(pos) {
			style = style.Reverse(true)
		}
		if pos == cursor {
			style = style.Bold(true).Background(tcell.ColorDarkCyan)
		}

		screen.SetContent(x, y, r, nil, style)
		x += runewidth.RuneWidth(r)
	}

	status := fmt.Sprintf(" cursor %d  override %v", cursor, capability.Installed())
	if sel, ok := h.Active(); ok {
		status += fmt.Sprintf("  selection %s", sel)
	}
	if count > 0 {
		status += fmt.Sprintf("  count %d", count)
	}
	drawStatus(screen, status)

	screen.Show()
}

// spanSet returns the active selection's bounds, or an empty span.
func spanSet(h *host.TextHost) textspan.Span {
	sel, ok := h.Active()
	if !ok {
		return textspan.Span{}
	}
	return sel.Bounds
}

// drawStatus writes the status line at the bottom of the screen.
func drawStatus(screen tcell.Screen, status string) {
	width, height := screen.Size()
	style := tcell.StyleDefault.Reverse(true)
	x := 0
	for _, r := range status {
		if x >= width {
			break
		}
		screen.SetContent(x, height-1, r, nil, style)
		x += runewidth.RuneWidth(r)
	}
	for ; x < width; x++ {
		screen.SetContent(x, height-1, ' ', nil, style)
	}
}
