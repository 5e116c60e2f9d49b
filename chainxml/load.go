package chainxml

import (
	"encoding/xml"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/katalvlaran/bateman/chain"
)

// Wire representation of the description document. Attributes stay as raw
// strings so "absent" and "zero" remain distinguishable.
type document struct {
	Decay  *decayBlock `xml:"decay_constants"`
	Yields *yieldBlock `xml:"neutron_fission_yields"`
}

type decayBlock struct {
	Nuclides []nuclideEntry `xml:"nuclide_table"`
}

type nuclideEntry struct {
	Name       string          `xml:"name,attr"`
	DecayModes string          `xml:"decay_modes,attr"`
	Reactions  string          `xml:"reactions,attr"`
	HalfLife   string          `xml:"half_life,attr"`
	Decay      []decayEntry    `xml:"decay_type"`
	Paths      []reactionEntry `xml:"reaction_type"`
}

type decayEntry struct {
	Target string `xml:"target,attr"`
	Kind   string `xml:"type,attr"`
	Branch string `xml:"branching_ratio,attr"`
}

type reactionEntry struct {
	Kind   string `xml:"type,attr"`
	Target string `xml:"target,attr"`
	Energy string `xml:"energy,attr"`
}

type yieldBlock struct {
	NumProducts   string         `xml:"nuclides"`
	NumPrecursors string         `xml:"precursor"`
	NumEnergies   string         `xml:"energy_points"`
	Precursors    string         `xml:"precursor_name"`
	Energies      string         `xml:"energy"`
	Products      []productEntry `xml:"nuclide_table"`
}

type productEntry struct {
	Name   string       `xml:"name,attr"`
	Tables []yieldTable `xml:"fission_yields"`
}

type yieldTable struct {
	Energy string `xml:"energy,attr"`
	Data   string `xml:"fy_data"`
}

// LoadFile reads and decodes the chain description at path.
func LoadFile(path string) (*chain.Chain, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("chainxml.LoadFile: %w", err)
	}
	defer f.Close()

	return Load(f)
}

// Load decodes a chain description from r into a frozen chain.Chain.
//
// Any structural defect aborts the load: no partial chain is ever returned.
// Returned errors wrap the package sentinels (or the chain package's
// referential sentinels) and match via errors.Is.
func Load(r io.Reader) (*chain.Chain, error) {
	var doc document
	if err := xml.NewDecoder(r).Decode(&doc); err != nil {
		return nil, fmt.Errorf("chainxml.Load: %v: %w", err, ErrSyntax)
	}
	if doc.Decay == nil {
		return nil, fmt.Errorf("chainxml.Load: %w", ErrNoDecayBlock)
	}
	if doc.Yields == nil {
		return nil, fmt.Errorf("chainxml.Load: %w", ErrNoYieldBlock)
	}

	nuclides, kinds, err := readNuclides(doc.Decay)
	if err != nil {
		return nil, fmt.Errorf("chainxml.Load: %w", err)
	}
	yields, err := readYields(doc.Yields)
	if err != nil {
		return nil, fmt.Errorf("chainxml.Load: %w", err)
	}

	c, err := chain.New(nuclides, kinds, yields)
	if err != nil {
		return nil, fmt.Errorf("chainxml.Load: %w", err)
	}

	return c, nil
}

// readNuclides converts the decay_constants entries in document order and
// collects the distinct reaction kinds as they are first seen.
func readNuclides(block *decayBlock) ([]chain.Nuclide, []string, error) {
	nuclides := make([]chain.Nuclide, 0, len(block.Nuclides))
	var kinds []string
	seenKind := make(map[string]bool)

	for _, entry := range block.Nuclides {
		if entry.Name == "" {
			return nil, nil, fmt.Errorf("nuclide_table without name: %w", ErrMissingAttr)
		}
		nDecay, err := attrInt(entry.Name, "decay_modes", entry.DecayModes)
		if err != nil {
			return nil, nil, err
		}
		nReact, err := attrInt(entry.Name, "reactions", entry.Reactions)
		if err != nil {
			return nil, nil, err
		}
		if len(entry.Decay) != nDecay {
			return nil, nil, fmt.Errorf("%s: decay_modes=%d but %d decay_type entries: %w",
				entry.Name, nDecay, len(entry.Decay), ErrPathCount)
		}
		if len(entry.Paths) != nReact {
			return nil, nil, fmt.Errorf("%s: reactions=%d but %d reaction_type entries: %w",
				entry.Name, nReact, len(entry.Paths), ErrPathCount)
		}

		nuc := chain.Nuclide{Name: entry.Name, YieldIndex: -1}

		if nDecay > 0 {
			nuc.HalfLife, err = attrFloat(entry.Name, "half_life", entry.HalfLife)
			if err != nil {
				return nil, nil, err
			}
			nuc.Decay = make([]chain.DecayMode, nDecay)
			for i, d := range entry.Decay {
				if d.Target == "" || d.Kind == "" {
					return nil, nil, fmt.Errorf("%s: decay_type needs target and type: %w",
						entry.Name, ErrMissingAttr)
				}
				branch, err := attrFloat(entry.Name, "branching_ratio", d.Branch)
				if err != nil {
					return nil, nil, err
				}
				nuc.Decay[i] = chain.DecayMode{Target: d.Target, Kind: d.Kind, Branch: branch}
			}
		}

		if nReact > 0 {
			nuc.Reactions = make([]chain.ReactionPath, nReact)
			for i, p := range entry.Paths {
				if p.Kind == "" {
					return nil, nil, fmt.Errorf("%s: reaction_type needs type: %w",
						entry.Name, ErrMissingAttr)
				}
				if !seenKind[p.Kind] {
					seenKind[p.Kind] = true
					kinds = append(kinds, p.Kind)
				}
				if p.Kind == chain.ReactionFission {
					// Fission loses into the yield distribution; the entry
					// records the energy release instead of a target.
					nuc.FissionQ, err = attrFloat(entry.Name, "energy", p.Energy)
					if err != nil {
						return nil, nil, err
					}
					nuc.Reactions[i] = chain.ReactionPath{Kind: p.Kind}
					continue
				}
				if p.Target == "" {
					return nil, nil, fmt.Errorf("%s: %s reaction needs target: %w",
						entry.Name, p.Kind, ErrMissingAttr)
				}
				nuc.Reactions[i] = chain.ReactionPath{Kind: p.Kind, Target: p.Target}
			}
		}

		nuclides = append(nuclides, nuc)
	}

	return nuclides, kinds, nil
}

// readYields converts the neutron_fission_yields block into a frozen table.
func readYields(block *yieldBlock) (*chain.FissionYields, error) {
	nProd, err := scalarInt("nuclides", block.NumProducts)
	if err != nil {
		return nil, err
	}
	nPre, err := scalarInt("precursor", block.NumPrecursors)
	if err != nil {
		return nil, err
	}
	nEn, err := scalarInt("energy_points", block.NumEnergies)
	if err != nil {
		return nil, err
	}

	precursors := strings.Fields(block.Precursors)
	if len(precursors) != nPre {
		return nil, fmt.Errorf("precursor_name lists %d names, declared %d: %w",
			len(precursors), nPre, ErrYieldShape)
	}
	energyFields := strings.Fields(block.Energies)
	if len(energyFields) != nEn {
		return nil, fmt.Errorf("energy lists %d points, declared %d: %w",
			len(energyFields), nEn, ErrYieldShape)
	}
	energies := make([]float64, nEn)
	energyIdx := make(map[string]int, nEn)
	for i, raw := range energyFields {
		energies[i], err = strconv.ParseFloat(raw, 64)
		if err != nil {
			return nil, fmt.Errorf("energy %q: %w", raw, ErrBadNumber)
		}
		// Keyed by the canonical numeric form so "0.0253" and "2.53e-2"
		// address the same point.
		energyIdx[canonNumber(raw)] = i
	}
	if len(block.Products) != nProd {
		return nil, fmt.Errorf("%d nuclide_table products, declared %d: %w",
			len(block.Products), nProd, ErrYieldShape)
	}

	products := make([]string, nProd)
	data := make([]float64, nProd*nEn*nPre)
	for p, prod := range block.Products {
		if prod.Name == "" {
			return nil, fmt.Errorf("yield nuclide_table without name: %w", ErrMissingAttr)
		}
		products[p] = prod.Name
		for _, table := range prod.Tables {
			if table.Energy == "" {
				return nil, fmt.Errorf("%s: fission_yields needs energy: %w", prod.Name, ErrMissingAttr)
			}
			e, ok := energyIdx[canonNumber(table.Energy)]
			if !ok {
				return nil, fmt.Errorf("%s: energy %s: %w", prod.Name, table.Energy, ErrUnknownEnergy)
			}
			fields := strings.Fields(table.Data)
			if len(fields) != nPre {
				return nil, fmt.Errorf("%s: fy_data lists %d yields, want %d: %w",
					prod.Name, len(fields), nPre, ErrYieldShape)
			}
			row := (p*nEn + e) * nPre
			for i, raw := range fields {
				data[row+i], err = strconv.ParseFloat(raw, 64)
				if err != nil {
					return nil, fmt.Errorf("%s: fy_data %q: %w", prod.Name, raw, ErrBadNumber)
				}
			}
		}
	}

	y, err := chain.NewFissionYields(products, energies, precursors, data)
	if err != nil {
		return nil, err
	}

	return y, nil
}

// canonNumber normalizes a numeric literal so energy keys written as
// "0.0253" and "2.53e-2" collide as intended.
func canonNumber(raw string) string {
	v, err := strconv.ParseFloat(strings.TrimSpace(raw), 64)
	if err != nil {
		return strings.TrimSpace(raw)
	}

	return strconv.FormatFloat(v, 'g', -1, 64)
}

// attrInt parses a required integer attribute of a nuclide entry.
func attrInt(nuclide, attr, raw string) (int, error) {
	if raw == "" {
		return 0, fmt.Errorf("%s: %s: %w", nuclide, attr, ErrMissingAttr)
	}
	v, err := strconv.Atoi(strings.TrimSpace(raw))
	if err != nil {
		return 0, fmt.Errorf("%s: %s=%q: %w", nuclide, attr, raw, ErrBadNumber)
	}

	return v, nil
}

// attrFloat parses a required float attribute of a nuclide entry.
func attrFloat(nuclide, attr, raw string) (float64, error) {
	if raw == "" {
		return 0, fmt.Errorf("%s: %s: %w", nuclide, attr, ErrMissingAttr)
	}
	v, err := strconv.ParseFloat(strings.TrimSpace(raw), 64)
	if err != nil {
		return 0, fmt.Errorf("%s: %s=%q: %w", nuclide, attr, raw, ErrBadNumber)
	}

	return v, nil
}

// scalarInt parses a required integer scalar element of the yield block.
func scalarInt(elem, raw string) (int, error) {
	s := strings.TrimSpace(raw)
	if s == "" {
		return 0, fmt.Errorf("%s: %w", elem, ErrMissingAttr)
	}
	v, err := strconv.Atoi(s)
	if err != nil {
		return 0, fmt.Errorf("%s=%q: %w", elem, raw, ErrBadNumber)
	}

	return v, nil
}
