package misc

import (
	"encoding/csv"
	"fmt"
	"io"
	"math/rand"

	log "github.com/sirupsen/logrus"
)

type Tip struct {
	Text     string `json:"text"`
	Category string `json:"category"`
}

// TipsManager serves random motivational fitness tips, loaded from a CSV.
type TipsManager struct {
	Tips         []*Tip
	CategoryTips map[string][]*Tip
}

func NewTipsManager(tipsCsvReader *csv.Reader) (*TipsManager, error) {
	tm := &TipsManager{}
	tm.CategoryTips = make(map[string][]*Tip)

	log.Println("reading tips CSV ...")

	tipsCsvReader.Comma = ';'
	for {
		record, err := tipsCsvReader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, err
		}

		if len(record) != 2 {
			return nil, fmt.Errorf("record [%s] does not have 2 elements", record)
		}

		// TIP;CATEGORY
		tip := &Tip{
			Text:     record[0],
			Category: record[1],
		}
		tm.Tips = append(tm.Tips, tip)
		tm.CategoryTips[tip.Category] = append(tm.CategoryTips[tip.Category], tip)
	}

	if len(tm.Tips) == 0 {
		return nil, fmt.Errorf("no tips loaded")
	}

	log.Printf("tips CSV read %d tips", len(tm.Tips))

	return tm, nil
}

func (tm *TipsManager) RandomTip() *Tip {
	index := rand.Float64() * float64(len(tm.Tips))
	return tm.Tips[int(index)]
}
