package systems

import (
	"encoding/json"
	"log"

	cfg "github.com/automoto/gravity-arena/config"
	"github.com/quasilyte/gdata"
)

// SavedLoadout is the last variant selection stored on disk, so the menu
// reopens on whatever each player picked last time.
type SavedLoadout struct {
	P1Variant int `json:"p1Variant"`
	P2Variant int `json:"p2Variant"`
}

var gdataManager *gdata.Manager
var gdataInitialized bool

// InitPersistence initializes the gdata manager for loadout storage.
func InitPersistence() error {
	m, err := gdata.Open(gdata.Config{
		AppName: "gravityarena",
	})
	if err != nil {
		log.Printf("Warning: Could not initialize persistence: %v", err)
		return err
	}
	gdataManager = m
	gdataInitialized = true
	return nil
}

// LoadLoadout loads the last saved variant selection from disk. A nil
// result means no valid save exists and the menu should use defaults.
func LoadLoadout() (*SavedLoadout, error) {
	if !gdataInitialized || gdataManager == nil {
		return nil, nil
	}

	data, err := gdataManager.LoadItem("loadout")
	if err != nil {
		log.Printf("Warning: Could not load loadout: %v", err)
		return nil, nil
	}
	if len(data) == 0 {
		return nil, nil
	}

	var loadout SavedLoadout
	if err := json.Unmarshal(data, &loadout); err != nil {
		log.Printf("Warning: Could not parse saved loadout: %v", err)
		return nil, err
	}

	if loadout.P1Variant < 0 || loadout.P1Variant >= len(cfg.AllVariants) ||
		loadout.P2Variant < 0 || loadout.P2Variant >= len(cfg.AllVariants) {
		return nil, nil
	}
	return &loadout, nil
}

// SaveLoadout saves the current variant selection to disk.
func SaveLoadout(p1, p2 cfg.VariantID) error {
	if !gdataInitialized || gdataManager == nil {
		return nil
	}

	data, err := json.Marshal(&SavedLoadout{
		P1Variant: int(p1),
		P2Variant: int(p2),
	})
	if err != nil {
		log.Printf("Warning: Could not serialize loadout: %v", err)
		return err
	}

	if err := gdataManager.SaveItem("loadout", data); err != nil {
		log.Printf("Warning: Could not save loadout: %v", err)
		return err
	}
	return nil
}
