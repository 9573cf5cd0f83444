package tui

// viewRegistry tracks which page is visible and which modals are open.
// Exactly one page is active at all times; modals toggle independently of
// page state. It knows nothing about data loading: the App wires loads to
// transitions so the registry stays free of data dependencies.
type viewRegistry struct {
	page   pageID
	modals [modalCount]bool
}

func newViewRegistry() viewRegistry {
	return viewRegistry{page: pageHome}
}

// showPage switches the active page. Unknown ids are a silent no-op; the
// controller only ever passes valid names.
func (v *viewRegistry) showPage(id pageID) {
	if id < 0 || id >= pageCount {
		return
	}
	v.page = id
}

func (v *viewRegistry) currentPage() pageID { return v.page }

func (v *viewRegistry) showModal(id modalID) {
	if id < 0 || id >= modalCount {
		return
	}
	v.modals[id] = true
}

func (v *viewRegistry) hideModal(id modalID) {
	if id < 0 || id >= modalCount {
		return
	}
	v.modals[id] = false
}

func (v *viewRegistry) modalVisible(id modalID) bool {
	if id < 0 || id >= modalCount {
		return false
	}
	return v.modals[id]
}

// activeModal returns the topmost open modal. The UI keeps at most one
// open, but the registry tolerates more.
func (v *viewRegistry) activeModal() (modalID, bool) {
	for id := modalID(0); id < modalCount; id++ {
		if v.modals[id] {
			return id, true
		}
	}
	return 0, false
}
