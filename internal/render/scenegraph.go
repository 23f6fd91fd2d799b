package render

import (
	"strings"
	"time"

	"github.com/TSKVenkat/bookd-sub000/internal/layout"
)

// visibilityInterval throttles the visible-subset recalculation. A stale
// visible set only affects drawing; hit-testing and mutation always run
// against the full model.
const visibilityInterval = 150 * time.Millisecond

// nodeKind tags entries in the retained node arena.
type nodeKind int

const (
	nodeSeat nodeKind = iota
	nodeSection
)

// sceneNode is a retained projection of one layout item. Nodes persist
// between frames and are updated in place when their source item changes.
type sceneNode struct {
	id      string
	kind    nodeKind
	x, y    float64
	margin  float64 // cull padding: seat radius or section extent
	markup  string  // cached SVG fragment
	visible bool
	seen    bool // sweep flag for removal detection
}

// SceneGraphRenderer is the retained backend for large seat counts. It
// keeps a node per layout item, re-emits markup only for changed items and
// recomputes the visible subset at most once per visibilityInterval, or
// immediately when the viewport changes.
type SceneGraphRenderer struct {
	nodes    map[string]*sceneNode
	order    []string
	lastVP   Viewport
	lastCull time.Time
	now      func() time.Time
}

// NewSceneGraphRenderer constructs an empty retained scene graph.
func NewSceneGraphRenderer() *SceneGraphRenderer {
	return &SceneGraphRenderer{
		nodes: make(map[string]*sceneNode),
		now:   time.Now,
	}
}

// Render syncs the scene graph against the layout, refreshes the visible
// subset if due and emits SVG for the visible nodes only.
func (r *SceneGraphRenderer) Render(l *layout.Layout, vp Viewport) string {
	r.sync(l)

	if vp != r.lastVP || r.now().Sub(r.lastCull) >= visibilityInterval {
		r.recomputeVisibility(vp)
		r.lastVP = vp
		r.lastCull = r.now()
	}

	var b strings.Builder
	writeHeader(&b, vp)
	writeStage(&b, &l.Stage)
	for _, id := range r.order {
		n := r.nodes[id]
		if n.visible {
			b.WriteString(n.markup)
		}
	}
	b.WriteString("</svg>\n")
	return b.String()
}

// sync walks the layout and adds, updates or removes nodes so the arena
// mirrors the model. Markup is regenerated only when the projected fragment
// actually differs.
func (r *SceneGraphRenderer) sync(l *layout.Layout) {
	for _, n := range r.nodes {
		n.seen = false
	}
	r.order = r.order[:0]

	for _, sec := range l.Sections() {
		var b strings.Builder
		writeSection(&b, l, sec)
		extent := sec.Width
		if sec.Height > extent {
			extent = sec.Height
		}
		c := sec.Center()
		r.upsert("sec:"+sec.ID, nodeSection, c.X, c.Y, extent, b.String())
	}
	for _, s := range l.Seats() {
		var b strings.Builder
		writeSeat(&b, l, s)
		r.upsert("seat:"+s.ID, nodeSeat, s.X, s.Y, l.Settings.SeatSize, b.String())
	}

	for id, n := range r.nodes {
		if !n.seen {
			delete(r.nodes, id)
		}
	}
}

func (r *SceneGraphRenderer) upsert(id string, kind nodeKind, x, y, margin float64, markup string) {
	n, ok := r.nodes[id]
	if !ok {
		n = &sceneNode{id: id, kind: kind, visible: true}
		r.nodes[id] = n
	}
	if n.x != x || n.y != y || n.markup != markup {
		n.x, n.y = x, y
		n.markup = markup
	}
	n.margin = margin
	n.seen = true
	r.order = append(r.order, id)
}

// recomputeVisibility marks the nodes whose position (padded by their
// extent) falls inside the viewport.
func (r *SceneGraphRenderer) recomputeVisibility(vp Viewport) {
	for _, n := range r.nodes {
		n.visible = vp.Contains(n.x, n.y, n.margin)
	}
}

// NodeCount reports the size of the retained arena.
func (r *SceneGraphRenderer) NodeCount() int {
	return len(r.nodes)
}

// VisibleCount reports how many nodes passed the last visibility pass.
func (r *SceneGraphRenderer) VisibleCount() int {
	count := 0
	for _, n := range r.nodes {
		if n.visible {
			count++
		}
	}
	return count
}
