package crop

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/xuri/excelize/v2"

	"etflow/entities"
)

// LoadTemplatesCSV reads FAO crop rows from a CSV with tolerant headers.
// Exported spreadsheets disagree on column naming, so headers are normalized
// and matched against aliases.
func LoadTemplatesCSV(path string) ([]entities.CropTemplate, error) {
	f, err := os.Open(path)
	if err != nil { return nil, err }
	defer f.Close()

	cr := csv.NewReader(f)
	head, err := cr.Read()
	if err != nil { return nil, err }

	norm := func(s string) string {
		s = strings.TrimSpace(s)
		s = strings.TrimPrefix(s, "\uFEFF") // BOM
		s = strings.ToLower(s)
		s = strings.ReplaceAll(s, " ", "")
		s = strings.ReplaceAll(s, "-", "")
		s = strings.ReplaceAll(s, "_", "")
		return s
	}
	hmap := map[string]int{}
	for i, h := range head {
		hmap[norm(h)] = i
	}
	findAny := func(keys ...string) int {
		for _, k := range keys {
			if idx, ok := hmap[norm(k)]; ok { return idx }
		}
		return -1
	}

	cName := findAny("crop", "name", "cropname")
	cKcIni := findAny("kc_ini", "kcini", "kcinitial")
	cKcMid := findAny("kc_mid", "kcmid")
	cKcEnd := findAny("kc_end", "kcend", "kclate")
	cIni := findAny("initial_days", "l_ini", "stageinitialdays", "ini")
	cDev := findAny("dev_days", "l_dev", "stagedevdays", "dev")
	cMid := findAny("mid_days", "l_mid", "stagemiddays", "mid")
	cLate := findAny("late_days", "l_late", "stagelatedays", "late")

	if cName == -1 || cKcIni == -1 || cKcMid == -1 || cKcEnd == -1 {
		return nil, fmt.Errorf("crop config missing required columns, found headers: %v", head)
	}

	var out []entities.CropTemplate
	for {
		rec, err := cr.Read()
		if err != nil {
			if errors.Is(err, io.EOF) { break }
			return nil, err
		}
		get := func(idx int) string {
			if idx < 0 || idx >= len(rec) { return "" }
			return strings.TrimSpace(rec[idx])
		}
		name := get(cName)
		if name == "" { continue }

		t := entities.CropTemplate{Name: name}
		t.KcIni, _ = strconv.ParseFloat(get(cKcIni), 64)
		t.KcMid, _ = strconv.ParseFloat(get(cKcMid), 64)
		t.KcEnd, _ = strconv.ParseFloat(get(cKcEnd), 64)
		t.StageInitialDays, _ = strconv.Atoi(get(cIni))
		t.StageDevDays, _ = strconv.Atoi(get(cDev))
		t.StageMidDays, _ = strconv.Atoi(get(cMid))
		t.StageLateDays, _ = strconv.Atoi(get(cLate))
		if t.KcMid <= 0 { continue } // skip junk rows
		out = append(out, t)
	}
	return out, nil
}

// LoadTemplatesXLSX reads the same columns from the first sheet of a
// workbook. Row 1 is the header, laid out as the CSV export.
func LoadTemplatesXLSX(path string) ([]entities.CropTemplate, error) {
	x, err := excelize.OpenFile(path)
	if err != nil { return nil, err }
	defer x.Close()

	sheet := x.GetSheetName(0)
	rows, err := x.GetRows(sheet)
	if err != nil { return nil, err }
	if len(rows) < 2 {
		return nil, fmt.Errorf("crop workbook %s: no data rows", path)
	}

	var out []entities.CropTemplate
	for _, rec := range rows[1:] {
		get := func(i int) string {
			if i >= len(rec) { return "" }
			return strings.TrimSpace(rec[i])
		}
		name := get(0)
		if name == "" { continue }
		t := entities.CropTemplate{Name: name}
		t.KcIni, _ = strconv.ParseFloat(get(1), 64)
		t.KcMid, _ = strconv.ParseFloat(get(2), 64)
		t.KcEnd, _ = strconv.ParseFloat(get(3), 64)
		t.StageInitialDays, _ = strconv.Atoi(get(4))
		t.StageDevDays, _ = strconv.Atoi(get(5))
		t.StageMidDays, _ = strconv.Atoi(get(6))
		t.StageLateDays, _ = strconv.Atoi(get(7))
		if t.KcMid <= 0 { continue }
		out = append(out, t)
	}
	return out, nil
}
