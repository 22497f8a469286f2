package game

type ComboInfo struct {
	Index    int
	NewCombo bool
}

// ComboInformation answers whether an object takes part in combo colouring.
// Banana showers never do.
func ComboInformation(h *HitObject) (ComboInfo, bool) {
	if h == nil || h.Kind == KindBananaShower {
		return ComboInfo{}, false
	}
	return ComboInfo{Index: h.ComboIndex, NewCombo: h.NewCombo}, true
}
