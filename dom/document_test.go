package dom

import (
	"strings"
	"testing"

	"github.com/npillmayer/schuko/tracing/gotestingadapter"
)

const testDoc = `<html><head><style>p { color: red; }</style></head>
<body><p style="color:green">hi</p><div>there</div></body></html>`

func TestDocumentArena(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "inliner.dom")
	defer teardown()
	//
	doc, err := ParseString(testDoc)
	if err != nil {
		t.Fatalf("cannot parse document: %v", err)
	}
	// html, head, style, body, p, div
	if len(doc.Elements()) != 6 {
		t.Fatalf("expected 6 elements in arena, have %d", len(doc.Elements()))
	}
	for i, e := range doc.Elements() {
		if e.Index != i {
			t.Errorf("expected element %d to carry index %d, is %d", i, i, e.Index)
		}
		if j, ok := doc.IndexOf(e.HTMLNode()); !ok || j != i {
			t.Errorf("expected IndexOf to invert the arena for element %d, got %d/%v", i, j, ok)
		}
	}
	if doc.Element(4).NodeName() != "p" {
		t.Errorf("expected element 4 to be the <p>, is %q", doc.Element(4).NodeName())
	}
	if doc.Element(99) != nil {
		t.Error("expected out-of-range index to yield no element")
	}
}

func TestStyleAttr(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "inliner.dom")
	defer teardown()
	//
	doc, _ := ParseString(testDoc)
	p, div := doc.Element(4), doc.Element(5)
	if attr, ok := p.StyleAttr(); !ok || attr != "color:green" {
		t.Errorf("expected <p> to carry style 'color:green', has %q/%v", attr, ok)
	}
	if _, ok := div.StyleAttr(); ok {
		t.Error("expected <div> to carry no style attribute, does")
	}
	p.SetStyleAttr("color: blue;")
	if attr, _ := p.StyleAttr(); attr != "color: blue;" {
		t.Errorf("expected style attribute to be replaced in place, is %q", attr)
	}
	div.SetStyleAttr("width: 10px;")
	if attr, ok := div.StyleAttr(); !ok || attr != "width: 10px;" {
		t.Errorf("expected style attribute to be appended, is %q/%v", attr, ok)
	}
}

func TestHTMLSerialization(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "inliner.dom")
	defer teardown()
	//
	doc, _ := ParseString(testDoc)
	out, err := doc.HTML()
	if err != nil {
		t.Fatalf("cannot serialize document: %v", err)
	}
	if !strings.Contains(out, `<p style="color:green">hi</p>`) {
		t.Errorf("expected serialized output to preserve the <p>, is %q", out)
	}
	out2, _ := doc.HTML()
	if out != out2 {
		t.Error("expected repeated serialization to be byte-identical, isn't")
	}
}

func TestRemoveStyleElements(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "inliner.dom")
	defer teardown()
	//
	doc, _ := ParseString(testDoc)
	doc.RemoveStyleElements()
	out, _ := doc.HTML()
	if strings.Contains(out, "<style>") {
		t.Errorf("expected <style> elements to be removed, output is %q", out)
	}
}

func TestFromNilTree(t *testing.T) {
	if _, err := FromHTMLTree(nil); err == nil {
		t.Error("expected a nil tree to flag an error, didn't")
	}
}
