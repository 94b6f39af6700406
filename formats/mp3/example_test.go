// SPDX-License-Identifier: EPL-2.0

package mp3_test

import (
	"fmt"
	"log"
	"os"

	"github.com/ik5/wavfx/formats/mp3"
	"github.com/ik5/wavfx/formats/wav"
)

// ExampleDecoder_Decode shows how to decode an MP3 file.
func ExampleDecoder_Decode() {
	f, err := os.Open("input.mp3")
	if err != nil {
		log.Fatal(err)
	}
	defer f.Close()

	clip, err := mp3.Decoder{}.Decode(f)
	if err != nil {
		log.Fatal(err)
	}

	fmt.Printf("Decoded MP3: %d Hz, %d channels\n",
		clip.SampleRate, clip.Samples.NumChannels())
}

// ExampleDecoder_Decode_convertToWav converts an MP3 file into a mono WAV file.
func ExampleDecoder_Decode_convertToWav() {
	in, err := os.Open("input.mp3")
	if err != nil {
		log.Fatal(err)
	}
	defer in.Close()

	clip, err := mp3.Decoder{}.Decode(in)
	if err != nil {
		log.Fatal(err)
	}

	f, err := wav.NewFile(clip.SampleRate, clip.Samples)
	if err != nil {
		log.Fatal(err)
	}

	if err := f.Mono(); err != nil {
		log.Fatal(err)
	}

	if err := f.SaveToFile("output.wav"); err != nil {
		log.Fatal(err)
	}
}
