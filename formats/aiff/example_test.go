// SPDX-License-Identifier: EPL-2.0

package aiff_test

import (
	"fmt"
	"log"
	"os"

	"github.com/ik5/wavfx/formats/aiff"
	"github.com/ik5/wavfx/formats/wav"
)

// ExampleDecoder_Decode shows how to decode an AIFF file.
func ExampleDecoder_Decode() {
	f, err := os.Open("input.aiff")
	if err != nil {
		log.Fatal(err)
	}
	defer f.Close()

	clip, err := aiff.Decoder{}.Decode(f)
	if err != nil {
		log.Fatal(err)
	}

	fmt.Printf("Decoded AIFF: %d Hz, %d channels, %d frames\n",
		clip.SampleRate, clip.Samples.NumChannels(), clip.Samples.SamplesPerChannel())
}

// ExampleDecoder_Decode_convertToWav converts an AIFF file into a canonical WAV file.
func ExampleDecoder_Decode_convertToWav() {
	in, err := os.Open("input.aiff")
	if err != nil {
		log.Fatal(err)
	}
	defer in.Close()

	clip, err := aiff.Decoder{}.Decode(in)
	if err != nil {
		log.Fatal(err)
	}

	f, err := wav.NewFile(clip.SampleRate, clip.Samples)
	if err != nil {
		log.Fatal(err)
	}

	if err := f.SaveToFile("output.wav"); err != nil {
		log.Fatal(err)
	}
}
