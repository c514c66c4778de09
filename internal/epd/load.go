// Package epd loads test suites in EPD format: a FEN followed by a
// "bm" opcode naming the best move(s) in SAN.
package epd

import (
	"bufio"
	"fmt"
	"log"
	"os"
	"strings"

	"github.com/oneQuasi/artifact/pkg/common"
)

type Item struct {
	Content   string
	Position  common.Position
	BestMoves []common.Move
}

func LoadFile(filePath string) ([]Item, error) {
	file, err := os.Open(filePath)
	if err != nil {
		return nil, err
	}
	defer file.Close()

	var result []Item
	var scanner = bufio.NewScanner(file)
	for scanner.Scan() {
		var line = scanner.Text()
		var item, err = parseItem(line)
		if err != nil {
			log.Println(err)
			continue
		}
		result = append(result, item)
	}
	return result, scanner.Err()
}

func parseItem(s string) (Item, error) {
	var bmBegin = strings.Index(s, "bm")
	var bmEnd = strings.Index(s, ";")
	if bmBegin < 0 || bmEnd < bmBegin {
		return Item{}, fmt.Errorf("bad epd line %v", s)
	}
	var fen = strings.TrimSpace(s[:bmBegin])
	var sBestMoves = strings.Split(s[bmBegin:bmEnd], " ")[1:]

	var p, err = common.NewPositionFromFEN(fen)
	if err != nil {
		return Item{}, err
	}

	var bestMoves []common.Move
	for _, sBestMove := range sBestMoves {
		var move = common.ParseMoveSAN(&p, sBestMove)
		if move == common.MoveEmpty {
			return Item{}, fmt.Errorf("parse move failed %v", s)
		}
		bestMoves = append(bestMoves, move)
	}
	if len(bestMoves) == 0 {
		return Item{}, fmt.Errorf("empty best moves %v", s)
	}

	return Item{
		Content:   s,
		Position:  p,
		BestMoves: bestMoves,
	}, nil
}
