package physics

import (
	"fmt"
	"strings"
)

// SurfaceMaterial tags a body's surface for restitution lookups.
type SurfaceMaterial int

const (
	Steel SurfaceMaterial = iota
	Wood
	Rubber
	Cloth
	Stone

	numMaterials
)

var materialNames = [numMaterials]string{"steel", "wood", "rubber", "cloth", "stone"}

func (m SurfaceMaterial) String() string {
	if m < 0 || m >= numMaterials {
		return fmt.Sprintf("SurfaceMaterial(%d)", int(m))
	}
	return materialNames[m]
}

// ParseMaterial accepts the names produced by SurfaceMaterial.String, case-insensitively.
func ParseMaterial(s string) (SurfaceMaterial, error) {
	for i, name := range materialNames {
		if strings.EqualFold(s, name) {
			return SurfaceMaterial(i), nil
		}
	}
	return 0, fmt.Errorf("unknown surface material %q", s)
}

// RestitutionTable is a symmetric material-pair lookup. Configure it with Set
// before the first Step; treat it as read-only afterwards.
type RestitutionTable struct {
	values [numMaterials][numMaterials]float32
}

// DefaultRestitution returns the stock table.
func DefaultRestitution() *RestitutionTable {
	return &RestitutionTable{values: [numMaterials][numMaterials]float32{
		//  Steel Wood Rubber Cloth Stone
		{0.9, 0.7, 0.6, 0.4, 0.8}, // Steel
		{0.7, 0.5, 0.4, 0.3, 0.6}, // Wood
		{0.6, 0.4, 0.8, 0.2, 0.5}, // Rubber
		{0.4, 0.3, 0.2, 0.1, 0.3}, // Cloth
		{0.8, 0.6, 0.5, 0.3, 0.7}, // Stone
	}}
}

// Lookup returns the combined restitution for a material pair. Unknown tags
// yield 0.
func (t *RestitutionTable) Lookup(a, b SurfaceMaterial) float32 {
	if !validMaterial(a) || !validMaterial(b) {
		return 0
	}
	return t.values[a][b]
}

// Set writes both (a,b) and (b,a), clamping v to [0,1].
func (t *RestitutionTable) Set(a, b SurfaceMaterial, v float32) error {
	if !validMaterial(a) || !validMaterial(b) {
		return fmt.Errorf("set restitution %v/%v: unknown material", a, b)
	}
	v = clamp(v, 0, 1)
	t.values[a][b] = v
	t.values[b][a] = v
	return nil
}

func validMaterial(m SurfaceMaterial) bool {
	return m >= 0 && m < numMaterials
}
