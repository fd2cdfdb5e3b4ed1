// html views of the course details server
package views

import (
	"fmt"
	"html/template"
	"io"
)

// view identifiers
const (
	InstructorCourseDetails = "instructorCourseDetails"
)

const fragmentSuffix = "Fragment"

type ErrUnknownView struct {
	View string
}

func (e *ErrUnknownView) Error() string {
	return fmt.Sprintf("unknown view \"%s\"", e.View)
}

// renders views by their identifier, either as a full page or as a fragment of one
type Renderer struct {
	templates *template.Template
}

func NewRenderer() *Renderer {
	templates := template.New("views").Funcs(template.FuncMap{
		// the value was produced as markup by the server (e.g. the student list table) and is not escaped again
		"trusted": func(s string) template.HTML {
			return template.HTML(s)
		},
	})
	template.Must(templates.New(InstructorCourseDetails).Parse(instructorCourseDetailsPage))
	template.Must(templates.New(InstructorCourseDetails + fragmentSuffix).Parse(instructorCourseDetailsFragment))
	return &Renderer{templates: templates}
}

// render the given view with the given data to w
func (r *Renderer) Render(w io.Writer, view string, fragment bool, data interface{}) error {
	name := view
	if fragment {
		name += fragmentSuffix
	}
	t := r.templates.Lookup(name)
	if t == nil {
		return &ErrUnknownView{name}
	}
	return t.Execute(w, data)
}
