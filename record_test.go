package msdftext

import (
	"context"
	"encoding/json"
	"errors"
	"reflect"
	"strings"
	"testing"

	"github.com/gogpu/msdftext/layout"
)

func testRecordText(t *testing.T) *Text {
	t.Helper()
	txt := NewText(nil, WithFontStyle(testStyle(t)), WithName("score"), WithText("AB\nBA"))
	txt.SetPosition(V2(12.5, -3))
	txt.SetAlign(layout.AlignCenter)
	txt.SetCharacterWrap(false)
	txt.SetMaxWidth(320)
	txt.SetColor(RGBA8(10, 20, 30, 0.75))
	txt.SetGamma(1.8)
	txt.SetStroke(NewStroke(RGB(0, 0.5, 1), 3.25))
	ds := NewDropShadow()
	ds.Offset = V2(-2, 4)
	ds.Stroke.Size = 1.5
	txt.SetDropShadow(ds)
	txt.SetDebug(true)
	txt.SetLetterSpacing(0.5)
	return txt
}

func TestRecordYAMLRoundTrip(t *testing.T) {
	rec := testRecordText(t).Record()

	data, err := MarshalRecordYAML(rec)
	if err != nil {
		t.Fatalf("MarshalRecordYAML() error = %v", err)
	}
	if !strings.Contains(string(data), "alignType: CENTER") {
		t.Errorf("alignment not serialized by name:\n%s", data)
	}

	got, err := UnmarshalRecordYAML(data)
	if err != nil {
		t.Fatalf("UnmarshalRecordYAML() error = %v", err)
	}
	if !reflect.DeepEqual(got, rec) {
		t.Errorf("YAML round trip differs:\n got %+v\nwant %+v", got, rec)
	}
}

func TestRecordJSONRoundTrip(t *testing.T) {
	rec := testRecordText(t).Record()

	data, err := json.Marshal(rec)
	if err != nil {
		t.Fatalf("json.Marshal() error = %v", err)
	}
	var got Record
	if err := json.Unmarshal(data, &got); err != nil {
		t.Fatalf("json.Unmarshal() error = %v", err)
	}
	if !reflect.DeepEqual(got, rec) {
		t.Errorf("JSON round trip differs:\n got %+v\nwant %+v", got, rec)
	}
}

func TestRestore(t *testing.T) {
	rec := testRecordText(t).Record()

	txt, err := Restore(context.Background(), nil, rec)
	if err != nil {
		t.Fatalf("Restore() error = %v", err)
	}
	if !reflect.DeepEqual(txt.Record(), rec) {
		t.Errorf("restored Record() differs:\n got %+v\nwant %+v", txt.Record(), rec)
	}

	want, _ := testRecordText(t).Mesh()
	got, err := txt.Mesh()
	if err != nil {
		t.Fatalf("restored Mesh() error = %v", err)
	}
	if !reflect.DeepEqual(got, want) {
		t.Error("restored text builds a different mesh")
	}
}

func TestRestoreTexture(t *testing.T) {
	rec := testRecordText(t).Record()
	rec.TextureSrc = "fonts/open_sans.png"

	tex := &testTexture{ready: true, src: rec.TextureSrc, w: 256, h: 128}
	txt, err := Restore(context.Background(), nil, rec, WithTextureSource(&fakeTextures{tex: tex}))
	if err != nil {
		t.Fatalf("Restore() error = %v", err)
	}
	if txt.TextureSrc() != rec.TextureSrc {
		t.Errorf("TextureSrc() = %q, want %q", txt.TextureSrc(), rec.TextureSrc)
	}

	boom := errors.New("missing")
	txt, err = Restore(context.Background(), nil, rec, WithTextureSource(&fakeTextures{err: boom}))
	if !errors.Is(err, boom) {
		t.Errorf("Restore() error = %v, want %v", err, boom)
	}
	if txt == nil || txt.Text() != rec.Text {
		t.Error("Restore() did not return the text alongside the load error")
	}
}

func TestRecordWithoutStyle(t *testing.T) {
	rec := NewText(nil, WithText("x")).Record()
	if rec.FontStyle != nil {
		t.Error("FontStyle recorded without a style")
	}
	txt, err := Restore(context.Background(), nil, rec)
	if err != nil || txt.FontStyle() != nil {
		t.Errorf("Restore() = style %v, err %v", txt.FontStyle(), err)
	}
}
