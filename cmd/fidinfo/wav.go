package main

import (
	"fmt"
	"io"
	"math"
	"os"

	"github.com/go-audio/audio"
	"github.com/go-audio/wav"

	"github.com/cwbudde/algo-fid/dsp/filter/chain"
)

const (
	// wavPCM is the encoder audio format code for integer PCM.
	wavPCM = 1
	// irBitDepth is the sample size of impulse-response files.
	irBitDepth = 24
)

// writeImpulseWAV writes the first n samples of the impulse response of c
// to a mono WAV file at the given sampling rate. Samples outside [-1, 1)
// are clipped.
func writeImpulseWAV(path string, c chain.Chain, rate, n int) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create output file: %w", err)
	}
	if err := encodeImpulse(f, c, rate, n); err != nil {
		_ = f.Close()
		return err
	}
	return f.Close()
}

func encodeImpulse(w io.WriteSeeker, c chain.Chain, rate, n int) error {
	if rate <= 0 {
		return fmt.Errorf("WAV sampling rate must be a positive integer, got %d", rate)
	}
	ir, err := c.ImpulseResponse(n)
	if err != nil {
		return err
	}

	maxVal := math.Exp2(irBitDepth - 1)
	data := make([]int, len(ir))
	for i, v := range ir {
		data[i] = clip(v, maxVal)
	}

	enc := wav.NewEncoder(w, rate, irBitDepth, 1, wavPCM)
	buf := &audio.IntBuffer{
		Format:         &audio.Format{NumChannels: 1, SampleRate: rate},
		Data:           data,
		SourceBitDepth: irBitDepth,
	}
	if err := enc.Write(buf); err != nil {
		return fmt.Errorf("failed to write WAV data: %w", err)
	}
	return enc.Close()
}

func clip(v, maxVal float64) int {
	s := math.Round(v * maxVal)
	return int(math.Max(-maxVal, math.Min(maxVal-1, s)))
}
