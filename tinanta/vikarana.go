package tinanta

import "github.com/ambuda-org/vidyut-prakriya-go/dhatu"

// vikaranaSpec names a vikarana's upadesha form and the sutra that
// prescribes it for kartari prayoga.
type vikaranaSpec struct {
	upadesha string
	ruleID   string
}

// kartariVikaranaByGana maps each of the ten dhatupatha ganas to the
// present-stem vikarana 3.1.68-3.1.81 insert before a sarvadhatuka ending
// in kartari prayoga. Adadi's entry is empty (luk-elided, 2.4.72); curadi's
// Ric is a simplification of its real Ric+Sap double-vikarana pipeline.
var kartariVikaranaByGana = map[dhatu.Gana]vikaranaSpec{
	dhatu.Bhvadi:    {"Sap", "3.1.68"},
	dhatu.Adadi:     {"", "2.4.72"},
	dhatu.Juhotyadi: {"Sap", "3.1.68"},
	dhatu.Divadi:    {"Syan", "3.1.69"},
	dhatu.Svadi:     {"Snu", "3.1.73"},
	dhatu.Tudadi:    {"Sa", "3.1.77"},
	dhatu.Rudhadi:   {"Snam", "3.1.78"},
	dhatu.Tanadi:    {"u", "3.1.79"},
	dhatu.Kryadi:    {"SnA", "3.1.81"},
	dhatu.Curadi:    {"Ric", "3.1.25"},
}

// karmaniVikarana is "yak", inserted regardless of gana whenever prayoga is
// karmani or bhave (3.1.67 sArvaDAtuke yak).
var karmaniVikarana = vikaranaSpec{"yak", "3.1.67"}
