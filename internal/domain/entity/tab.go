package entity

// TabID uniquely identifies a tab. Ids are assigned by the caller and stay
// stable across reopen, so opening the same target twice lands on one tab.
type TabID string

// TabKind is an opaque content tag forwarded to the content renderer.
type TabKind string

// Tab kinds produced by the workspace itself.
const (
	KindWelcome  TabKind = "welcome"
	KindDocument TabKind = "document"
	KindArtifact TabKind = "artifact"
	KindNote     TabKind = "note"
)

// TabGroup places a tab in the primary or secondary strip.
type TabGroup string

const (
	GroupPrimary   TabGroup = "primary"
	GroupSecondary TabGroup = "secondary"
)

// TabDescriptor is what a caller hands over when asking for a tab.
type TabDescriptor struct {
	ID      TabID
	Kind    TabKind
	Title   string
	Group   TabGroup
	Payload any // Per-kind data, never inspected here
}

// Tab is a single open view of a document or artifact.
type Tab struct {
	ID      TabID
	Kind    TabKind
	Title   string
	Group   TabGroup
	Pinned  bool // Signals persistent relevance
	Dirty   bool // Owner reports unsaved state
	Payload any
}

// Descriptor returns the descriptor the tab was opened from.
func (t Tab) Descriptor() TabDescriptor {
	return TabDescriptor{
		ID:      t.ID,
		Kind:    t.Kind,
		Title:   t.Title,
		Group:   t.Group,
		Payload: t.Payload,
	}
}

func newTab(desc TabDescriptor) Tab {
	group := desc.Group
	if group == "" {
		group = GroupPrimary
	}
	return Tab{
		ID:      desc.ID,
		Kind:    desc.Kind,
		Title:   desc.Title,
		Group:   group,
		Payload: desc.Payload,
	}
}

// TabList is an ordered collection of tabs plus the active tab pointer.
//
// TabList is a value: every transition returns a new list and leaves the
// receiver untouched. All transitions are total; an unknown id turns the
// transition into a no-op instead of an error, because ids may reference
// targets that a workspace reset already removed.
type TabList struct {
	tabs   []Tab
	index  map[TabID]int
	active TabID
}

// NewTabList builds a list from descriptors in order. Duplicate ids collapse
// onto the first occurrence. The last descriptor opened becomes active.
func NewTabList(descs ...TabDescriptor) TabList {
	var tl TabList
	for _, desc := range descs {
		tl = tl.Open(desc)
	}
	return tl
}

// ResetTo replaces the whole collection with a single tab.
func ResetTo(desc TabDescriptor) TabList {
	return NewTabList(desc)
}

// Len returns the number of tabs.
func (tl TabList) Len() int {
	return len(tl.tabs)
}

// ActiveID returns the active tab id, empty when nothing is active.
func (tl TabList) ActiveID() TabID {
	return tl.active
}

// Tabs returns a copy of the tabs in visual order.
func (tl TabList) Tabs() []Tab {
	out := make([]Tab, len(tl.tabs))
	copy(out, tl.tabs)
	return out
}

// IDs returns tab ids in visual order.
func (tl TabList) IDs() []TabID {
	ids := make([]TabID, len(tl.tabs))
	for i, tab := range tl.tabs {
		ids[i] = tab.ID
	}
	return ids
}

// IndexOf returns the position of a tab, or -1.
func (tl TabList) IndexOf(id TabID) int {
	if i, ok := tl.index[id]; ok {
		return i
	}
	return -1
}

// Find returns a tab by id.
func (tl TabList) Find(id TabID) (Tab, bool) {
	i := tl.IndexOf(id)
	if i < 0 {
		return Tab{}, false
	}
	return tl.tabs[i], true
}

// At returns the tab at a zero-based position.
func (tl TabList) At(i int) (Tab, bool) {
	if i < 0 || i >= len(tl.tabs) {
		return Tab{}, false
	}
	return tl.tabs[i], true
}

// Active returns the active tab, if any.
func (tl TabList) Active() (Tab, bool) {
	if tl.active == "" {
		return Tab{}, false
	}
	return tl.Find(tl.active)
}

// Next returns the id after the active tab, wrapping last to first.
// Without an active tab it returns the first id. Empty list yields "".
func (tl TabList) Next() TabID {
	return tl.step(1)
}

// Previous returns the id before the active tab, wrapping first to last.
func (tl TabList) Previous() TabID {
	return tl.step(-1)
}

func (tl TabList) step(direction int) TabID {
	n := len(tl.tabs)
	if n == 0 {
		return ""
	}
	cur := tl.IndexOf(tl.active)
	if cur < 0 {
		return tl.tabs[0].ID
	}
	return tl.tabs[(cur+direction+n)%n].ID
}

// Open activates the tab with the descriptor's id, appending it first when
// it is not open yet. An existing tab keeps its position and fields.
func (tl TabList) Open(desc TabDescriptor) TabList {
	if desc.ID == "" {
		return tl
	}
	if _, ok := tl.index[desc.ID]; ok {
		out := tl.clone()
		out.active = desc.ID
		return out
	}
	tabs := make([]Tab, len(tl.tabs), len(tl.tabs)+1)
	copy(tabs, tl.tabs)
	tabs = append(tabs, newTab(desc))
	return build(tabs, desc.ID)
}

// Close removes a tab. When the closed tab was active its left neighbour
// becomes active; closing the first tab activates the tab that shifted into
// slot zero.
func (tl TabList) Close(id TabID) TabList {
	i := tl.IndexOf(id)
	if i < 0 {
		return tl
	}
	tabs := make([]Tab, 0, len(tl.tabs)-1)
	tabs = append(tabs, tl.tabs[:i]...)
	tabs = append(tabs, tl.tabs[i+1:]...)

	active := tl.active
	if active == id {
		switch {
		case len(tabs) == 0:
			active = ""
		case i == 0:
			active = tabs[0].ID
		default:
			active = tabs[i-1].ID
		}
	}
	return build(tabs, active)
}

// Activate points the active tab at id when it exists.
func (tl TabList) Activate(id TabID) TabList {
	if tl.IndexOf(id) < 0 {
		return tl
	}
	out := tl.clone()
	out.active = id
	return out
}

// ActivateIndex activates the tab at a zero-based position.
func (tl TabList) ActivateIndex(i int) TabList {
	tab, ok := tl.At(i)
	if !ok {
		return tl
	}
	return tl.Activate(tab.ID)
}

// TogglePin flips the pinned flag. Order and activation are unchanged.
func (tl TabList) TogglePin(id TabID) TabList {
	return tl.update(id, func(t *Tab) { t.Pinned = !t.Pinned })
}

// SetDirty records whether the tab's owner holds unsaved state.
func (tl TabList) SetDirty(id TabID, dirty bool) TabList {
	return tl.update(id, func(t *Tab) { t.Dirty = dirty })
}

// Rename changes a tab title.
func (tl TabList) Rename(id TabID, title string) TabList {
	return tl.update(id, func(t *Tab) { t.Title = title })
}

// Reorder moves the source tab into the target's former position, shifting
// the tabs in between by one slot. Reorder(C, A) on [A B C] gives [C A B].
func (tl TabList) Reorder(sourceID, targetID TabID) TabList {
	if sourceID == targetID {
		return tl
	}
	from, to := tl.IndexOf(sourceID), tl.IndexOf(targetID)
	if from < 0 || to < 0 {
		return tl
	}
	moved := tl.tabs[from]
	tabs := make([]Tab, 0, len(tl.tabs))
	tabs = append(tabs, tl.tabs[:from]...)
	tabs = append(tabs, tl.tabs[from+1:]...)
	tabs = append(tabs[:to], append([]Tab{moved}, tabs[to:]...)...)
	return build(tabs, tl.active)
}

func (tl TabList) update(id TabID, fn func(*Tab)) TabList {
	i := tl.IndexOf(id)
	if i < 0 {
		return tl
	}
	out := tl.clone()
	fn(&out.tabs[i])
	return out
}

func (tl TabList) clone() TabList {
	tabs := make([]Tab, len(tl.tabs))
	copy(tabs, tl.tabs)
	return build(tabs, tl.active)
}

// build reindexes tabs. The active id is dropped if it does not resolve.
func build(tabs []Tab, active TabID) TabList {
	index := make(map[TabID]int, len(tabs))
	for i, tab := range tabs {
		index[tab.ID] = i
	}
	if _, ok := index[active]; !ok {
		active = ""
	}
	return TabList{tabs: tabs, index: index, active: active}
}
