package level

import (
	"embed"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/cbodonnell/brawler/pkg/game/constants"
	"github.com/cbodonnell/brawler/pkg/game/types"
	"github.com/cbodonnell/brawler/pkg/kinematic"
	"gopkg.in/yaml.v3"
)

// DefaultLevel is the level bundled with the game.
const DefaultLevel = "street.yaml"

//go:embed levels/*.yaml
var LevelsFS embed.FS

// Level is a parsed, validated level layout. Templates are values and are never mutated.
type Level struct {
	Name         string
	Segments     int
	SegmentWidth float64
	PlayerStart  kinematic.Vector
	Enemies      []types.EnemyTemplate
	Pickups      []types.PickupTemplate
}

// Width returns the total width of the level.
func (l *Level) Width() float64 {
	return float64(l.Segments) * l.SegmentWidth
}

type LevelSpec struct {
	Name         string       `yaml:"name"`
	Segments     int          `yaml:"segments"`
	SegmentWidth float64      `yaml:"segment_width"`
	PlayerStart  PositionSpec `yaml:"player_start"`
	Enemies      []EnemySpec  `yaml:"enemies"`
	Pickups      []PickupSpec `yaml:"pickups"`
}

type PositionSpec struct {
	X float64 `yaml:"x"`
	Y float64 `yaml:"y"`
}

type EnemySpec struct {
	Type string  `yaml:"type"`
	X    float64 `yaml:"x"`
	Y    float64 `yaml:"y"`
}

type PickupSpec struct {
	X float64 `yaml:"x"`
	Y float64 `yaml:"y"`
}

// Load reads a level by name, preferring a file on disk under levels/ over the embedded copy.
func Load(name string) (*Level, error) {
	clean := cleanLevelPath(name)
	data, err := os.ReadFile(diskLevelPath(clean))
	if err != nil {
		data, err = LevelsFS.ReadFile("levels/" + clean)
		if err != nil {
			return nil, fmt.Errorf("level: load %s: %w", clean, err)
		}
	}
	return Parse(data)
}

// LoadFile reads a level from an explicit path on disk.
func LoadFile(path string) (*Level, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("level: read %s: %w", path, err)
	}
	l, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("level: %s: %w", path, err)
	}
	return l, nil
}

// Default returns the bundled level.
func Default() (*Level, error) {
	return Load(DefaultLevel)
}

// Parse decodes and validates a YAML level.
func Parse(data []byte) (*Level, error) {
	var spec LevelSpec
	if err := yaml.Unmarshal(data, &spec); err != nil {
		return nil, fmt.Errorf("level: unmarshal: %w", err)
	}
	return spec.Build()
}

// Build validates the spec and converts it into a Level.
func (s LevelSpec) Build() (*Level, error) {
	if s.Segments < 1 {
		return nil, fmt.Errorf("level %q: segments must be at least 1, got %d", s.Name, s.Segments)
	}
	segmentWidth := s.SegmentWidth
	if segmentWidth == 0 {
		segmentWidth = constants.SegmentWidth
	}
	l := &Level{
		Name:         s.Name,
		Segments:     s.Segments,
		SegmentWidth: segmentWidth,
		PlayerStart:  kinematic.Vector{X: s.PlayerStart.X, Y: s.PlayerStart.Y},
	}
	if l.Width() < constants.ViewportWidth {
		return nil, fmt.Errorf("level %q: width %.0f is narrower than the viewport", s.Name, l.Width())
	}
	if l.PlayerStart.X < 0 || l.PlayerStart.X > l.Width()-constants.PlayerWidth {
		return nil, fmt.Errorf("level %q: player start x %.0f is outside the level", s.Name, l.PlayerStart.X)
	}

	hasBoss := false
	for i, e := range s.Enemies {
		characterType, ok := types.ParseCharacterType(e.Type)
		if !ok {
			return nil, fmt.Errorf("level %q: enemy %d: unknown type %q", s.Name, i, e.Type)
		}
		if characterType == types.CharacterTypeBoss {
			hasBoss = true
		}
		profile := types.ProfileFor(characterType)
		if e.X < 0 || e.X > l.Width()-profile.Width {
			return nil, fmt.Errorf("level %q: enemy %d: x %.0f is outside the level", s.Name, i, e.X)
		}
		if types.ClampToLane(e.Y, profile.Height) != e.Y {
			return nil, fmt.Errorf("level %q: enemy %d: y %.0f is outside the street lane", s.Name, i, e.Y)
		}
		l.Enemies = append(l.Enemies, types.EnemyTemplate{
			CharacterType: characterType,
			X:             e.X,
			Y:             e.Y,
		})
	}
	if !hasBoss {
		return nil, fmt.Errorf("level %q: at least one boss is required", s.Name)
	}

	for i, p := range s.Pickups {
		if p.X < 0 || p.X > l.Width()-constants.PickupWidth || p.Y < 0 || p.Y > constants.ViewportHeight-constants.PickupHeight {
			return nil, fmt.Errorf("level %q: pickup %d at (%.0f, %.0f) is outside the level", s.Name, i, p.X, p.Y)
		}
		l.Pickups = append(l.Pickups, types.PickupTemplate{X: p.X, Y: p.Y})
	}

	return l, nil
}

func cleanLevelPath(path string) string {
	s := filepath.ToSlash(path)
	if after, ok := strings.CutPrefix(s, "levels/"); ok {
		s = after
	}
	return s
}

func diskLevelPath(clean string) string {
	return filepath.Join("levels", filepath.FromSlash(clean))
}
