// Package crop maps planting age onto the FAO-56 crop coefficient curve and
// loads crop templates from tabular config files.
package crop

import "etflow/entities"

// Stages is the Kc curve definition for one crop: four stage lengths in days
// and the three coefficient values the curve moves between.
type Stages struct {
	KcIni float64
	KcMid float64
	KcEnd float64

	InitialDays int
	DevDays     int
	MidDays     int
	LateDays    int
}

func StagesFromTemplate(t *entities.CropTemplate) Stages {
	return Stages{
		KcIni:       t.KcIni,
		KcMid:       t.KcMid,
		KcEnd:       t.KcEnd,
		InitialDays: t.StageInitialDays,
		DevDays:     t.StageDevDays,
		MidDays:     t.StageMidDays,
		LateDays:    t.StageLateDays,
	}
}

// Kc returns the crop coefficient at a planting age in days: flat at KcIni
// through the initial stage, linear from KcIni to KcMid across development,
// flat at KcMid through mid-season, KcEnd after.
func (s Stages) Kc(ageDays int) float64 {
	if ageDays <= s.InitialDays {
		return s.KcIni
	}
	devEnd := s.InitialDays + s.DevDays
	if ageDays <= devEnd {
		if s.DevDays <= 0 {
			return s.KcMid
		}
		frac := float64(ageDays-s.InitialDays) / float64(s.DevDays)
		return s.KcIni + (s.KcMid-s.KcIni)*frac
	}
	if ageDays <= devEnd+s.MidDays {
		return s.KcMid
	}
	return s.KcEnd
}

// SeasonDays is the full cycle length.
func (s Stages) SeasonDays() int {
	return s.InitialDays + s.DevDays + s.MidDays + s.LateDays
}
