// Copyright 2026 Interlink Data, Inc.
//
//  Licensed under the Apache License, Version 2.0 (the "License");
//  you may not use this file except in compliance with the License.
//  You may obtain a copy of the License at
//
//    http://www.apache.org/licenses/LICENSE-2.0
//
//  Unless required by applicable law or agreed to in writing, software
//  distributed under the License is distributed on an "AS IS" BASIS,
//  WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
//  See the License for the specific language governing permissions and
//  limitations under the License.

package interlink

import (
	"encoding/json"
	"io"
	"runtime"

	"github.com/google/uuid"
	"github.com/klauspost/compress/zstd"
)

// Plan is a complete split plan ready to be shipped to
// execution workers. Each Split inside it is self-describing,
// so a worker needs nothing beyond its share of the plan and
// an InputFS to read its records.
type Plan struct {
	// ID uniquely identifies this planning pass;
	// workers use it to correlate their splits
	// with a single plan.
	ID string `json:"id"`
	// Splits is the full split sequence in plan
	// order: target order, then ascending offset.
	Splits []Split `json:"splits"`
}

// NewPlan wraps a split sequence in a Plan with
// a fresh plan ID.
func NewPlan(splits []Split) *Plan {
	return &Plan{
		ID:     uuid.New().String(),
		Splits: splits,
	}
}

var (
	zstdEnc *zstd.Encoder
	zstdDec *zstd.Decoder
)

func init() {
	// by default, concurrency is set to min(4, GOMAXPROCS);
	// we'd like it to *always* be GOMAXPROCS
	enc, err := zstd.NewWriter(nil, zstd.WithEncoderConcurrency(runtime.GOMAXPROCS(0)))
	if err != nil {
		panic(err)
	}
	zstdEnc = enc
	dec, err := zstd.NewReader(nil, zstd.WithDecoderConcurrency(runtime.GOMAXPROCS(0)))
	if err != nil {
		panic(err)
	}
	zstdDec = dec
}

// Encode writes the zstd-compressed encoding of p to dst.
// Plans compress well: split entries for the same target
// share most of their bytes.
func (p *Plan) Encode(dst io.Writer) error {
	buf, err := json.Marshal(p)
	if err != nil {
		return err
	}
	_, err = dst.Write(zstdEnc.EncodeAll(buf, nil))
	return err
}

// DecodePlan reads a Plan previously written by Encode.
func DecodePlan(src io.Reader) (*Plan, error) {
	buf, err := io.ReadAll(src)
	if err != nil {
		return nil, err
	}
	raw, err := zstdDec.DecodeAll(buf, nil)
	if err != nil {
		return nil, err
	}
	p := new(Plan)
	if err := json.Unmarshal(raw, p); err != nil {
		return nil, err
	}
	return p, nil
}
