package hosting

import (
	"math"
	"testing"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"

	"github.com/alexiusacademia/gophb/internal/geometry"
	"github.com/alexiusacademia/gophb/internal/model"
	"github.com/alexiusacademia/gophb/internal/space"
	"github.com/alexiusacademia/gophb/internal/units"
)

var headless = geometry.NewHeadless(0.001, units.MetricDocument)

func room(name string, x0, x1 float64) *model.Room {
	return model.NewRoom(name, "1", geometry.Box(geometry.Pt(x0, 0, 0), geometry.Pt(x1, 5, 3)))
}

func spaceAt(t *testing.T, name string, x0, y0, x1, y1 float64) *space.Space {
	t.Helper()
	seg, err := space.NewFloorSegment(headless, name, geometry.Rect(x0, y0, x1, y1, 0), 1, nil)
	if err != nil {
		t.Fatalf("NewFloorSegment: %v", err)
	}
	floor, _ := space.NewFloor(name, *seg)
	vol, err := space.NewVolume(headless, name, *floor, 0)
	if err != nil {
		t.Fatalf("NewVolume: %v", err)
	}
	return space.New("1", name, *vol)
}

func TestHostSpaces_TwoRooms(t *testing.T) {
	r1, r2 := room("R1", 0, 5), room("R2", 5, 10)
	s := spaceAt(t, "Living", 3, 3, 4, 4)

	res, err := HostSpaces(headless, []*model.Room{r1, r2}, []*space.Space{s}, DefaultOptions(), nil)
	if err != nil {
		t.Fatalf("HostSpaces: %v", err)
	}
	if len(res.Rooms) != 2 {
		t.Fatalf("rooms = %d, want 2", len(res.Rooms))
	}
	if len(res.OpenRooms) != 0 || len(res.Unhosted) != 0 {
		t.Fatalf("open %v, unhosted %v", res.OpenRooms, res.Unhosted)
	}
	got := res.Rooms[0].Caps().Ph().Spaces
	if len(got) != 1 || got[0].Name != "Living" || got[0].HostRef != r1.Identifier {
		t.Fatalf("R1 spaces = %+v", got)
	}
	if _, ok := res.Rooms[1].Properties[model.CapabilityPh]; ok {
		t.Fatalf("R2 should not host anything")
	}
	if _, ok := r1.Properties[model.CapabilityPh]; ok {
		t.Fatalf("input room was mutated")
	}
	if s.Hosted() {
		t.Fatalf("input space was mutated")
	}
}

func TestHostSpaces_FirstRoomWins(t *testing.T) {
	r1, r2 := room("R1", 0, 5), room("R2", 5, 10)
	// straddles the shared wall at x=5; its reference point lies on it
	s := spaceAt(t, "Hall", 4.5, 2, 5.5, 3)

	res, err := HostSpaces(headless, []*model.Room{r1, r2}, []*space.Space{s}, DefaultOptions(), nil)
	if err != nil {
		t.Fatalf("HostSpaces: %v", err)
	}
	if n := len(res.Rooms[0].Caps().Ph().Spaces); n != 1 {
		t.Fatalf("R1 spaces = %d, want 1", n)
	}
	if _, ok := res.Rooms[1].Properties[model.CapabilityPh]; ok {
		t.Fatalf("space hosted twice")
	}
}

func TestHostSpaces_OpenAndUnhosted(t *testing.T) {
	open := room("Open", 0, 5)
	open.Geometry.Faces = open.Geometry.Faces[:5]
	inside := spaceAt(t, "Lost", 1, 1, 2, 2)
	far := spaceAt(t, "Far", 50, 50, 51, 51)

	core, logs := observer.New(zapcore.WarnLevel)
	res, err := HostSpaces(headless, []*model.Room{open}, []*space.Space{inside, far}, DefaultOptions(), zap.New(core))
	if err != nil {
		t.Fatalf("HostSpaces: %v", err)
	}
	if len(res.OpenRooms) != 1 || res.OpenRooms[0] != open.Identifier {
		t.Fatalf("OpenRooms = %v", res.OpenRooms)
	}
	if len(res.Unhosted) != 2 {
		t.Fatalf("Unhosted = %d, want 2", len(res.Unhosted))
	}
	if res.Unhosted[0].Space.Name != "Lost" || len(res.Unhosted[1].Points) != 1 {
		t.Fatalf("unhosted = %+v", res.Unhosted)
	}
	if logs.Len() != 3 {
		t.Fatalf("warnings = %d, want 3", logs.Len())
	}
}

func TestHostSpaces_InheritNamesAndVentilation(t *testing.T) {
	r1 := room("Unit A", 0, 5)
	legacy := 0.01
	r1.Caps().Energy().VentilationLoad().AboluteVentilation = &legacy

	a := spaceAt(t, "Kitchen", 0, 0, 2, 2)
	b := spaceAt(t, "Bed", 3, 3, 4, 4)
	if err := a.SetFlowRates(space.FlowRates{Supply: 36, Extract: 18}); err != nil {
		t.Fatalf("SetFlowRates: %v", err)
	}
	if err := b.SetFlowRates(space.FlowRates{Supply: 0, Extract: 72}); err != nil {
		t.Fatalf("SetFlowRates: %v", err)
	}

	opts := DefaultOptions()
	opts.InheritRoomNames = true
	res, err := HostSpaces(headless, []*model.Room{r1}, []*space.Space{a, b}, opts, nil)
	if err != nil {
		t.Fatalf("HostSpaces: %v", err)
	}
	out := res.Rooms[0]
	spaces := out.Caps().Ph().Spaces
	if len(spaces) != 1 || spaces[0].Name != "Unit A" || len(spaces[0].Volumes) != 2 {
		t.Fatalf("merged spaces = %+v", spaces)
	}
	vent := out.Caps().Energy().Ventilation
	if vent.AbsoluteVentilation != nil {
		t.Fatalf("legacy spelling in use, corrected one should stay unset")
	}
	want := 0.01 + 0.01 + 0.02
	if math.Abs(vent.Absolute()-want) > 1e-12 {
		t.Fatalf("absolute ventilation = %v, want %v", vent.Absolute(), want)
	}
	if legacy != 0.01 {
		t.Fatalf("input room ventilation mutated: %v", legacy)
	}
}
