// Package ui serves parsed HTML templates over HTTP for quick previews.
package ui

import (
	"fmt"
	"net/http"
	"os"
	"path/filepath"
	"strings"

	"github.com/hamza/htmlbuilder/format"
	"github.com/hamza/htmlbuilder/html"
	"github.com/hamza/htmlbuilder/html/parser"
)

// Server renders HTML template files from a directory. Each request
// re-reads and re-parses the file, applies placeholder substitution from
// the query string, and serves the serialized result.
type Server struct {
	dir string
	mux *http.ServeMux
}

func NewServer(dir string) (*Server, error) {
	info, err := os.Stat(dir)
	if err != nil {
		return nil, fmt.Errorf("stat template dir: %w", err)
	}
	if !info.IsDir() {
		return nil, fmt.Errorf("not a directory: %s", dir)
	}

	s := &Server{
		dir: dir,
		mux: http.NewServeMux(),
	}

	s.mux.HandleFunc("GET /view/{file...}", s.handleView)
	s.mux.HandleFunc("GET /tree/{file...}", s.handleTree)
	s.mux.HandleFunc("GET /", s.handleIndex)

	return s, nil
}

func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.mux.ServeHTTP(w, r)
}

// parseFile parses the named template and applies query parameters as
// placeholder substitutions.
func (s *Server) parseFile(r *http.Request, name string) ([]*html.Node, error) {
	path := filepath.Join(s.dir, filepath.Clean("/"+name))
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read template: %w", err)
	}

	nodes, err := parser.Parse(string(data))
	if err != nil {
		return nil, fmt.Errorf("parse template: %w", err)
	}

	params := make(map[string]string)
	for key, values := range r.URL.Query() {
		if len(values) > 0 {
			params[key] = values[0]
		}
	}
	for _, node := range nodes {
		node.ApplyParamsRecursive(params)
	}

	return nodes, nil
}

func (s *Server) handleView(w http.ResponseWriter, r *http.Request) {
	nodes, err := s.parseFile(r, r.PathValue("file"))
	if err != nil {
		http.Error(w, err.Error(), http.StatusUnprocessableEntity)
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	format.NewHTMLEncoder(w).Encode(nodes)
}

func (s *Server) handleTree(w http.ResponseWriter, r *http.Request) {
	nodes, err := s.parseFile(r, r.PathValue("file"))
	if err != nil {
		http.Error(w, err.Error(), http.StatusUnprocessableEntity)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	format.NewJSONEncoder(w).Encode(nodes)
}

func (s *Server) handleIndex(w http.ResponseWriter, r *http.Request) {
	if r.URL.Path != "/" {
		http.NotFound(w, r)
		return
	}

	var files []string
	filepath.WalkDir(s.dir, func(path string, d os.DirEntry, err error) error {
		if err != nil || d.IsDir() {
			return err
		}
		ext := filepath.Ext(path)
		if ext != ".html" && ext != ".htm" {
			return nil
		}
		rel, err := filepath.Rel(s.dir, path)
		if err != nil {
			return nil
		}
		files = append(files, rel)
		return nil
	})

	doc := html.NewDocument("html")
	body := html.NewElement("body")
	heading := html.NewElement("h1")
	heading.SetText("Templates")
	body.AddChild(heading)
	list := html.NewElement("ul")
	for _, file := range files {
		item := html.NewElement("li")
		link := html.NewElementAttrs("a", map[string]string{
			"href": "/view/" + strings.ReplaceAll(file, string(os.PathSeparator), "/"),
		})
		link.SetText(file)
		item.AddChild(link)
		list.AddChild(item)
	}
	body.AddChild(list)
	doc.AddChild(body)

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	fmt.Fprint(w, doc.String())
}
