// Package main is an interactive tracer for the crest input router. It
// wires a tcell terminal to the router, binds a few actions, and prints
// every routed event so keymaps and hook scripts can be exercised by hand.
package main

import (
	"flag"
	"fmt"
	"os"
	"os/signal"
	"sync"
	"syscall"

	"github.com/gdamore/tcell/v2"

	"github.com/crestui/crest/internal/geometry"
	"github.com/crestui/crest/internal/input/action"
	"github.com/crestui/crest/internal/input/event"
	"github.com/crestui/crest/internal/input/hook"
	"github.com/crestui/crest/internal/input/keymap"
	"github.com/crestui/crest/internal/input/platform"
	"github.com/crestui/crest/internal/input/router"
)

// Version information (set via ldflags during build).
var (
	version = "dev"
	commit  = "unknown"
)

// Demo actions.
type QuitAction struct{}
type FocusSidebarAction struct{}
type FocusEditorAction struct{}
type ClearTraceAction struct{}

const traceLimit = 64

func main() {
	os.Exit(run())
}

func run() int {
	var (
		keymapPath  string
		hookPath    string
		showVersion bool
	)
	flag.StringVar(&keymapPath, "keymap", "", "Path to a TOML keymap (hot reloaded on change)")
	flag.StringVar(&hookPath, "hooks", "", "Path to a Lua key-hook script")
	flag.BoolVar(&showVersion, "version", false, "Show version information")
	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "crest - input event routing tracer\n\n")
		fmt.Fprintf(os.Stderr, "Usage: crest [options]\n\n")
		fmt.Fprintf(os.Stderr, "Options:\n")
		flag.PrintDefaults()
	}
	flag.Parse()

	if showVersion {
		fmt.Printf("crest %s (%s)\n", version, commit)
		return 0
	}

	reg := action.NewRegistry()
	reg.MustRegister("app.quit", QuitAction{})
	reg.MustRegister("app.focus_sidebar", FocusSidebarAction{})
	reg.MustRegister("app.focus_editor", FocusEditorAction{})
	reg.MustRegister("trace.clear", ClearTraceAction{})

	tracer := &tracer{}
	r := router.NewRouter(
		router.WithActions(reg),
		router.WithFailureHandler(func(f router.Failure) {
			if f.Err != nil {
				tracer.log("failure: %v", f.Err)
				return
			}
			tracer.log("failure: listener panic on node %d: %v", f.Node, f.PanicValue)
		}),
	)

	// A fixed three-node tree: app root, sidebar on the left third,
	// editor on the rest.
	app := r.NewNode(router.NoNode)
	r.SetKeyContext(app, "app")
	sidebar := r.NewNode(app)
	r.SetKeyContext(sidebar, "sidebar")
	editor := r.NewNode(app)
	r.SetKeyContext(editor, "editor")

	if err := installBindings(r, keymapPath); err != nil {
		fmt.Fprintf(os.Stderr, "Error: keymap: %v\n", err)
		return 1
	}

	if keymapPath != "" {
		watcher, err := keymap.WatchFile(keymapPath, r.Bindings(), func(err error) {
			tracer.log("keymap reload: %v", err)
		})
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: keymap watcher: %v\n", err)
			return 1
		}
		defer watcher.Close()
	}

	if hookPath != "" {
		filter := hook.NewLuaFilter()
		defer filter.Close()
		if err := filter.LoadFile(hookPath); err != nil {
			fmt.Fprintf(os.Stderr, "Error: hooks: %v\n", err)
			return 1
		}
		r.AddKeyFilter(filter)
	}

	screen, err := tcell.NewScreen()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: terminal: %v\n", err)
		return 1
	}
	if err := screen.Init(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: terminal: %v\n", err)
		return 1
	}
	defer screen.Fini()
	screen.EnableMouse()

	r.SetHitTester(splitHitTester{
		screen:  screen,
		app:     app,
		sidebar: sidebar,
		editor:  editor,
	})

	quit := make(chan struct{})
	var quitOnce sync.Once
	requestQuit := func() { quitOnce.Do(func() { close(quit) }) }

	wireTraceListeners(r, tracer, map[router.NodeID]string{
		app: "app", sidebar: "sidebar", editor: "editor",
	})
	r.OnAction(app, QuitAction{}, func(_ action.Action, p *router.Pass) {
		p.StopPropagation()
		p.Defer(requestQuit)
	})
	r.OnAction(app, FocusSidebarAction{}, func(_ action.Action, p *router.Pass) {
		p.StopPropagation()
		r.Focus(sidebar)
	})
	r.OnAction(app, FocusEditorAction{}, func(_ action.Action, p *router.Pass) {
		p.StopPropagation()
		r.Focus(editor)
	})
	r.OnAction(app, ClearTraceAction{}, func(_ action.Action, p *router.Pass) {
		p.StopPropagation()
		tracer.clear()
	})
	r.OnFocusChanged(func(ev router.FocusEvent) {
		if ev.Focused != nil {
			tracer.log("focus -> node %d", ev.Focused.Node)
		} else {
			tracer.log("focus cleared")
		}
	})

	r.Focus(editor)

	signals := make(chan os.Signal, 1)
	signal.Notify(signals, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		<-signals
		requestQuit()
	}()

	events := make(chan tcell.Event, 16)
	go func() {
		for {
			ev := screen.PollEvent()
			if ev == nil {
				return
			}
			select {
			case events <- ev:
			case <-quit:
				return
			}
		}
	}()

	translator := platform.NewTranslator()
	for {
		draw(screen, tracer, r)

		select {
		case <-quit:
			return 0
		case tev := <-events:
			if _, ok := tev.(*tcell.EventResize); ok {
				screen.Sync()
				continue
			}
			for _, ev := range translator.Translate(tev) {
				r.Dispatch(ev)
			}
		}
	}
}

// installBindings loads the keymap file, or falls back to built-in
// bindings when no path is given.
func installBindings(r *router.Router, path string) error {
	if path == "" {
		return r.BindKeys([]keymap.Binding{
			{Keys: "ctrl-q", Action: "app.quit"},
			{Keys: "ctrl-l", Action: "trace.clear"},
			{Keys: "ctrl-s", Action: "app.focus_sidebar", Context: "app"},
			{Keys: "ctrl-e", Action: "app.focus_editor", Context: "app"},
		})
	}
	bindings, err := keymap.LoadFile(path)
	if err != nil {
		return err
	}
	return r.BindKeys(bindings)
}

// wireTraceListeners logs every event kind on every named node.
func wireTraceListeners(r *router.Router, tr *tracer, names map[router.NodeID]string) {
	for id, name := range names {
		r.OnKeyDown(id, func(ev event.KeyDownEvent, _ *router.Pass) {
			tr.log("%s: key-down %s", name, ev.Keystroke)
		})
		r.OnMouseDown(id, func(ev event.MouseDownEvent, p *router.Pass) {
			tr.log("%s: mouse-down %s x%d at %s", name, ev.Button, ev.ClickCount, ev.Position)
			// Click focuses the innermost node under the pointer.
			if !p.Handled() {
				p.StopPropagation()
				r.Focus(id)
			}
		})
		r.OnMouseUp(id, func(ev event.MouseUpEvent, _ *router.Pass) {
			tr.log("%s: mouse-up %s at %s", name, ev.Button, ev.Position)
		})
		r.OnScrollWheel(id, func(ev event.ScrollWheelEvent, p *router.Pass) {
			tr.log("%s: scroll %s", name, ev.Delta)
			p.StopPropagation()
		})
		r.OnClick(id, func(ev event.ClickEvent, _ *router.Pass) {
			tr.log("%s: click %s x%d", name, ev.Down.Button, ev.Down.ClickCount)
		})
	}
}

// splitHitTester maps the left third of the screen to the sidebar and the
// rest to the editor, both nested under the app root.
type splitHitTester struct {
	screen  tcell.Screen
	app     router.NodeID
	sidebar router.NodeID
	editor  router.NodeID
}

func (h splitHitTester) HitTest(p geometry.Point) []router.NodeID {
	w, _ := h.screen.Size()
	if int(p.X) < w/3 {
		return []router.NodeID{h.sidebar, h.app}
	}
	return []router.NodeID{h.editor, h.app}
}

// tracer keeps the last traceLimit log lines. Safe for concurrent use;
// reloads and signals log from other goroutines.
type tracer struct {
	mu    sync.Mutex
	lines []string
}

func (t *tracer) log(format string, args ...any) {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.lines = append(t.lines, fmt.Sprintf(format, args...))
	if len(t.lines) > traceLimit {
		t.lines = t.lines[len(t.lines)-traceLimit:]
	}
}

func (t *tracer) clear() {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.lines = nil
}

func (t *tracer) snapshot() []string {
	t.mu.Lock()
	defer t.mu.Unlock()
	return append([]string(nil), t.lines...)
}

func draw(screen tcell.Screen, tr *tracer, r *router.Router) {
	screen.Clear()

	style := tcell.StyleDefault
	header := "crest tracer | ctrl-q quit, ctrl-l clear, ctrl-s/ctrl-e focus"
	if focused, ok := r.Focused(); ok {
		header = fmt.Sprintf("%s | focused node %d", header, focused)
	}
	drawLine(screen, 0, header, style.Reverse(true))

	_, height := screen.Size()
	lines := tr.snapshot()
	avail := height - 1
	if len(lines) > avail {
		lines = lines[len(lines)-avail:]
	}
	for i, line := range lines {
		drawLine(screen, i+1, line, style)
	}
	screen.Show()
}

func drawLine(screen tcell.Screen, y int, text string, style tcell.Style) {
	width, _ := screen.Size()
	x := 0
	for _, r := range text {
		if x >= width {
			break
		}
		screen.SetContent(x, y, r, nil, style)
		x++
	}
}
