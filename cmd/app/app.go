package app

import (
	"fmt"
	"io"
	"io/fs"
	"os"
	"path"
	"strings"
	"time"

	"github.com/flytaly/mdnodes/pkg/fswatcher"
	"github.com/flytaly/mdnodes/pkg/log"
	"github.com/flytaly/mdnodes/pkg/parser"
	"github.com/flytaly/mdnodes/pkg/render"
	"github.com/gookit/color"
)

// ProgramCfg holds the settings collected from the command line
type ProgramCfg struct {
	Format    render.Format
	LogPath   string
	SkipBlank bool
	NoColor   bool
	Interval  time.Duration
}

// Program parses markdown files and prints their nodes.
type Program struct {
	cfg ProgramCfg
	in  io.Reader
	out io.Writer
	log log.Logger
}

func NewProgram(cfg ProgramCfg, in io.Reader, out io.Writer) (*Program, error) {
	if cfg.NoColor {
		color.Enable = false
	}
	if cfg.Format == "" {
		cfg.Format = render.FormatTree
	}
	logger, err := log.New(cfg.LogPath)
	if err != nil {
		return nil, err
	}
	return &Program{cfg: cfg, in: in, out: out, log: logger}, nil
}

func (p *Program) Close() error {
	return p.log.Close()
}

func (p *Program) parse(content []byte) ([]parser.Node, error) {
	options := []func(*parser.Parser){parser.WithLogger(p.log)}
	if p.cfg.SkipBlank {
		options = append(options, parser.SkipBlankLines)
	}
	mdParser := parser.New(options...)
	if err := mdParser.Parse(content); err != nil {
		return nil, err
	}
	return mdParser.Nodes, nil
}

func (p *Program) print(name string, nodes []parser.Node, header bool) error {
	if header {
		if _, err := fmt.Fprintf(p.out, "%s\n", color.OpBold.Sprintf("==> %s <==", name)); err != nil {
			return err
		}
	}
	return render.Write(p.out, p.cfg.Format, nodes)
}

// Run parses every file in paths and prints the result. "-" or an empty
// list reads the document from standard input. Stops at the first file
// that cannot be read or parsed.
func (p *Program) Run(paths []string) error {
	if len(paths) == 0 {
		paths = []string{"-"}
	}

	for _, name := range paths {
		var (
			content []byte
			err     error
		)
		if name == "-" {
			content, err = io.ReadAll(p.in)
		} else {
			content, err = os.ReadFile(name)
		}
		if err != nil {
			return err
		}

		nodes, err := p.parse(content)
		if err != nil {
			return fmt.Errorf("%s: %w", name, err)
		}
		if err := p.print(name, nodes, len(paths) > 1); err != nil {
			return err
		}
	}
	return nil
}

// IsMarkdown reports whether the file name has a markdown extension.
func IsMarkdown(name string) bool {
	switch strings.ToLower(path.Ext(name)) {
	case ".md", ".markdown":
		return true
	}
	return false
}

func shouldSkip(name string, fi fs.FileInfo) bool {
	if fi.IsDir() {
		return strings.HasPrefix(fi.Name(), ".") || ExcludedDirs[fi.Name()]
	}
	return !IsMarkdown(name)
}

var ExcludedDirs = map[string]bool{"node_modules": true}

func (p *Program) processFile(fsys fs.FS, name string) {
	content, err := fs.ReadFile(fsys, name)
	if err != nil {
		p.log.Error("%s: %s", name, err)
		return
	}
	nodes, err := p.parse(content)
	if err != nil {
		p.log.Error("%s: %s", name, err)
		return
	}
	if err := p.print(name, nodes, true); err != nil {
		p.log.Error("%s: %s", name, err)
	}
}

// Watch prints the nodes of every markdown file in fsys, then polls fsys and
// prints the files again when they are created or modified. Returns when
// stop is closed.
func (p *Program) Watch(fsys fs.FS, stop <-chan struct{}) error {
	watcher := fswatcher.NewFsPoller(fsys)
	watcher.AddShouldSkipHook(shouldSkip)
	defer watcher.Close()

	files, err := watcher.Add(".")
	if err != nil {
		return err
	}
	for _, name := range files {
		p.processFile(fsys, name)
	}

	go func() {
		if err := watcher.Start(p.cfg.Interval); err != nil {
			p.log.Error("%s", err)
		}
	}()

	for {
		select {
		case <-stop:
			return nil
		case err := <-watcher.Errors():
			p.log.Error("%s", err)
		case event := <-watcher.Events():
			switch event.Op {
			case fswatcher.Create, fswatcher.Write:
				p.processFile(fsys, event.Name)
			case fswatcher.Remove:
				p.log.Info("%s: removed", event.Name)
			}
		}
	}
}
