package database

import (
	"gorm.io/gorm"

	"github.com/brownkp/europatch/internal/models"
)

// Seed populates an empty database with a starter module library and a few
// stored patch ideas so the API is usable before any rack has been imported.
// It is a no-op when the modules table already has rows.
func Seed(db *gorm.DB) error {
	var count int64
	if err := db.Model(&models.Module{}).Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		return nil
	}

	return db.Transaction(func(tx *gorm.DB) error {
		for _, m := range seedModules() {
			m := m
			if err := tx.Create(&m).Error; err != nil {
				return err
			}
		}
		for _, p := range seedPatchIdeas() {
			p := p
			if err := tx.Create(&p).Error; err != nil {
				return err
			}
		}
		return nil
	})
}

func seedModules() []models.Module {
	knob := func(name, description string, min, max, def float64) models.ModuleControl {
		return models.ModuleControl{
			Type:         "knob",
			Name:         name,
			Description:  description,
			MinValue:     min,
			MaxValue:     max,
			DefaultValue: def,
		}
	}
	swtch := func(name, description string, min, max, def float64) models.ModuleControl {
		return models.ModuleControl{
			Type:         "switch",
			Name:         name,
			Description:  description,
			MinValue:     min,
			MaxValue:     max,
			DefaultValue: def,
		}
	}
	in := func(name, description string) models.ModuleConnection {
		return models.ModuleConnection{Name: name, Type: "input", Description: description}
	}
	out := func(name, description string) models.ModuleConnection {
		return models.ModuleConnection{Name: name, Type: "output", Description: description}
	}

	return []models.Module{
		{
			Name:           "Plaits",
			Manufacturer:   "Mutable Instruments",
			HPWidth:        12,
			ModuleType:     "Oscillator",
			Description:    "Macro-oscillator with multiple synthesis models",
			ManualURL:      "https://mutable-instruments.net/modules/plaits/manual/",
			ModularGridURL: "https://www.modulargrid.net/e/mutable-instruments-plaits",
			Connections: []models.ModuleConnection{
				out("OUT", "Main audio output"),
				out("AUX", "Auxiliary audio output"),
				in("TRIG", "Trigger input"),
				in("PITCH", "V/Oct pitch input"),
				in("TIMBRE", "Timbre CV input"),
				in("MODEL", "Model selection CV input"),
			},
			Controls: []models.ModuleControl{
				knob("MODEL", "Selects synthesis model", 0, 15, 0),
				knob("TIMBRE", "Controls timbre/harmonic content", 0, 100, 50),
				knob("FREQ", "Controls frequency/pitch", 0, 100, 50),
				knob("HARMONICS", "Controls harmonic structure", 0, 100, 50),
				knob("MORPH", "Morphs between variations of the model", 0, 100, 50),
				swtch("TRIGGER MODE", "Selects trigger mode", 0, 1, 0),
			},
		},
		{
			Name:           "Rings",
			Manufacturer:   "Mutable Instruments",
			HPWidth:        14,
			ModuleType:     "Resonator",
			Description:    "Modal resonator",
			ManualURL:      "https://mutable-instruments.net/modules/rings/manual/",
			ModularGridURL: "https://www.modulargrid.net/e/mutable-instruments-rings",
			Connections: []models.ModuleConnection{
				in("IN", "Audio input"),
				out("OUT", "Main audio output"),
				out("ODD", "Odd harmonics output"),
				out("EVEN", "Even harmonics output"),
				in("STRUM", "Excitation input"),
				in("V/OCT", "V/Oct pitch input"),
				in("DAMPING", "Damping CV input"),
				in("POSITION", "Position CV input"),
			},
			Controls: []models.ModuleControl{
				knob("FREQUENCY", "Controls frequency/pitch", 0, 100, 50),
				knob("STRUCTURE", "Controls resonator structure", 0, 100, 50),
				knob("BRIGHTNESS", "Controls brightness/damping", 0, 100, 50),
				knob("POSITION", "Controls excitation position", 0, 100, 50),
				swtch("RESONATOR", "Selects resonator type", 0, 2, 0),
				swtch("POLYPHONY", "Selects polyphony mode", 0, 2, 0),
			},
		},
		{
			Name:           "Clouds",
			Manufacturer:   "Mutable Instruments",
			HPWidth:        18,
			ModuleType:     "Granular Processor",
			Description:    "Texture synthesizer",
			ManualURL:      "https://mutable-instruments.net/modules/clouds/manual/",
			ModularGridURL: "https://www.modulargrid.net/e/mutable-instruments-clouds",
			Connections: []models.ModuleConnection{
				in("IN L", "Left audio input"),
				in("IN R", "Right audio input"),
				out("OUT L", "Left audio output"),
				out("OUT R", "Right audio output"),
				in("TRIG", "Trigger input"),
				in("FREEZE", "Freeze input"),
				in("POSITION", "Position CV input"),
				in("SIZE", "Size CV input"),
				in("DENSITY", "Density CV input"),
				in("TEXTURE", "Texture CV input"),
			},
			Controls: []models.ModuleControl{
				knob("POSITION", "Controls playback position", 0, 100, 50),
				knob("SIZE", "Controls grain size", 0, 100, 50),
				knob("DENSITY", "Controls grain density", 0, 100, 50),
				knob("TEXTURE", "Controls grain texture", 0, 100, 50),
				knob("BLEND", "Controls wet/dry mix", 0, 100, 50),
				knob("SPREAD", "Controls stereo spread", 0, 100, 50),
				knob("FEEDBACK", "Controls feedback amount", 0, 100, 0),
				knob("REVERB", "Controls reverb amount", 0, 100, 0),
				swtch("QUALITY", "Selects audio quality", 0, 1, 0),
				swtch("MODE", "Selects processing mode", 0, 3, 0),
			},
		},
		{
			Name:           "Maths",
			Manufacturer:   "Make Noise",
			HPWidth:        20,
			ModuleType:     "Function Generator",
			Description:    "Dual function generator with mixing and logic",
			ManualURL:      "http://www.makenoisemusic.com/manuals/MATHSmanual.pdf",
			ModularGridURL: "https://www.modulargrid.net/e/make-noise-maths",
			Connections: []models.ModuleConnection{
				out("CH 1 OUT", "Channel 1 output"),
				out("CH 4 OUT", "Channel 4 output"),
				in("CH 1 TRIG", "Channel 1 trigger input"),
				in("CH 4 TRIG", "Channel 4 trigger input"),
				out("OR", "OR logic output"),
				out("SUM", "SUM output"),
				out("UNITY", "UNITY output"),
				out("INV", "Inverted output"),
			},
			Controls: func() []models.ModuleControl {
				cs := []models.ModuleControl{
					knob("RISE 1", "Channel 1 rise time", 0, 100, 50),
					knob("FALL 1", "Channel 1 fall time", 0, 100, 50),
					knob("RISE 4", "Channel 4 rise time", 0, 100, 50),
					knob("FALL 4", "Channel 4 fall time", 0, 100, 50),
				}
				for _, name := range []string{"CHANNEL 1", "CHANNEL 2", "CHANNEL 3", "CHANNEL 4"} {
					c := knob(name, name+" level", 0, 100, 50)
					c.IsAttenuverter = true
					cs = append(cs, c)
				}
				cs = append(cs,
					swtch("CYCLE 1", "Channel 1 cycle mode", 0, 1, 0),
					swtch("CYCLE 4", "Channel 4 cycle mode", 0, 1, 0),
				)
				return cs
			}(),
		},
		{
			Name:           "Pamela's NEW Workout",
			Manufacturer:   "ALM Busy Circuits",
			HPWidth:        8,
			ModuleType:     "Clock",
			Description:    "Advanced clocking module with multiple outputs",
			ManualURL:      "https://busycircuits.com/alm017/",
			ModularGridURL: "https://www.modulargrid.net/e/alm-busy-circuits-pamela-s-new-workout",
			Connections: func() []models.ModuleConnection {
				var cs []models.ModuleConnection
				for _, n := range []string{"1", "2", "3", "4", "5", "6", "7", "8"} {
					cs = append(cs, out("OUT "+n, "Clock output "+n))
				}
				cs = append(cs, in("RESET", "Reset input"))
				return cs
			}(),
			Controls: func() []models.ModuleControl {
				cs := []models.ModuleControl{knob("BPM", "Master tempo", 1, 300, 120)}
				divisions := map[string]float64{
					"1": 1, "2": 2, "3": 4, "4": 8, "5": 16, "6": 32, "7": 3, "8": 6,
				}
				for _, n := range []string{"1", "2", "3", "4", "5", "6", "7", "8"} {
					cs = append(cs, knob("DIVISION "+n, "Clock division for output "+n, 1, 64, divisions[n]))
				}
				return cs
			}(),
		},
	}
}

func seedPatchIdeas() []models.PatchIdea {
	return []models.PatchIdea{
		{
			Title:       "Ambient Clouds Texture",
			Description: "A generative ambient patch that creates evolving textures using Clouds to process sounds from Plaits.",
			PatchType:   "ambient",
			Complexity:  3,
			SourceType:  "generated",
			SourceText: "This patch uses Plaits as a sound source, feeding into Clouds for granular processing. " +
				"Maths provides modulation for both modules, creating slowly evolving textures.",
			RelevanceScore: 0.5,
		},
		{
			Title:       "Plucked Resonator Melodies",
			Description: "A generative melodic patch using Rings as a plucked voice, strummed by clock triggers.",
			PatchType:   "generative",
			Complexity:  2,
			SourceType:  "generated",
			SourceText: "Clock pulses from Pamela's NEW Workout strum Rings while a slow Maths channel sweeps the " +
				"structure, producing shifting plucked melodies.",
			RelevanceScore: 0.5,
		},
	}
}
