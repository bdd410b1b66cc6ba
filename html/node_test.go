package html

import (
	"testing"
)

func TestVoidNodeRejectsChildren(t *testing.T) {
	br := NewVoid("br", nil)

	br.AddChild(NewText("nope"))
	br.AddChild(NewElement("div"))

	if len(br.Children()) != 0 {
		t.Errorf("expected no children on void node, got %d", len(br.Children()))
	}
}

func TestVoidNodeRejectsText(t *testing.T) {
	img := NewVoid("img", map[string]string{"src": "a.png"})

	img.SetText("nope")

	if img.Text() != "" {
		t.Errorf("expected empty text on void node, got %q", img.Text())
	}
}

func TestDoctypeNodeRejectsChildren(t *testing.T) {
	doctype := NewDoctype("html")

	doctype.AddChild(NewElement("html"))

	if len(doctype.Children()) != 0 {
		t.Errorf("expected no children on doctype node, got %d", len(doctype.Children()))
	}
}

func TestAddChildIgnoresNil(t *testing.T) {
	div := NewElement("div")

	div.AddChild(nil)

	if len(div.Children()) != 0 {
		t.Errorf("expected no children after nil add, got %d", len(div.Children()))
	}
}

func TestChildrenKeepDocumentOrder(t *testing.T) {
	div := NewElement("div")
	div.AddChild(NewElement("a"))
	div.AddChild(NewElement("b"))
	div.AddChild(NewElement("c"))

	tags := []string{}
	for _, child := range div.Children() {
		tags = append(tags, child.Tag())
	}

	want := []string{"a", "b", "c"}
	for i, tag := range want {
		if tags[i] != tag {
			t.Errorf("child %d: expected %q, got %q", i, tag, tags[i])
		}
	}
}

func TestAttributeLookup(t *testing.T) {
	a := NewElementAttrs("a", map[string]string{"href": "/x"})

	if got := a.Attribute("href"); got != "/x" {
		t.Errorf("expected %q, got %q", "/x", got)
	}
	if got := a.Attribute("missing"); got != "" {
		t.Errorf("expected empty value for missing attribute, got %q", got)
	}
}

func TestSetAttribute(t *testing.T) {
	div := NewElement("div")
	div.SetAttribute("id", "main")

	if got := div.Attribute("id"); got != "main" {
		t.Errorf("expected %q, got %q", "main", got)
	}
}

func TestFindAll(t *testing.T) {
	root := NewElement("div")
	inner := NewElement("div")
	inner.AddChild(NewElement("span"))
	root.AddChild(NewElement("span"))
	root.AddChild(inner)

	spans := root.FindAll("span")
	if len(spans) != 2 {
		t.Fatalf("expected 2 spans, got %d", len(spans))
	}
}

func TestStringContainer(t *testing.T) {
	p := NewElementAttrs("p", map[string]string{"class": "x"})
	p.AddChild(NewText("hi"))

	want := `<p class="x">hi</p>`
	if got := p.String(); got != want {
		t.Errorf("expected %q, got %q", want, got)
	}
}

func TestStringSortsAttributes(t *testing.T) {
	div := NewElementAttrs("div", map[string]string{
		"id":    "a",
		"class": "b",
		"data":  "c",
	})

	want := `<div class="b" data="c" id="a"></div>`
	if got := div.String(); got != want {
		t.Errorf("expected %q, got %q", want, got)
	}
}

func TestStringBooleanAttribute(t *testing.T) {
	input := NewVoid("input", map[string]string{"disabled": ""})

	want := `<input disabled />`
	if got := input.String(); got != want {
		t.Errorf("expected %q, got %q", want, got)
	}
}

func TestStringDoctype(t *testing.T) {
	doctype := NewDoctype("html")

	want := `<!DOCTYPE html>`
	if got := doctype.String(); got != want {
		t.Errorf("expected %q, got %q", want, got)
	}
}

func TestStringFragment(t *testing.T) {
	fragment := NewElement("")
	fragment.AddChild(NewText("a"))
	fragment.AddChild(NewElement("span"))

	want := "a<span></span>"
	if got := fragment.String(); got != want {
		t.Errorf("expected %q, got %q", want, got)
	}
}
