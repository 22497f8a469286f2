package game

type Metadata struct {
	Title   string
	Artist  string
	Creator string
	Version string
}

type Beatmap struct {
	Metadata     Metadata
	Difficulty   Difficulty
	TimingPoints []TimingPoint
	Objects      []*HitObject
	Section      string // Raw hit object section, used to identify the beatmap

	activeObjects    []*HitObject
	startObjectIndex int
	endObjectIndex   int
}

func (b *Beatmap) Active() ([]*HitObject, int, int) {
	return b.activeObjects, b.startObjectIndex, b.endObjectIndex
}

func (b *Beatmap) SetActive(start int, end int) {
	b.activeObjects = b.Objects[start:end]
	b.startObjectIndex = start
	b.endObjectIndex = end
}

// Object looks an object up by id.
func (b *Beatmap) Object(id int) *HitObject {
	if id < 1 || id > len(b.Objects) {
		return nil
	}
	return b.Objects[id-1]
}
