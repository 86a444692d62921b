package audio

import (
	"encoding/binary"
	"errors"
	"fmt"
	"io"
	"os"
)

// WAVHeader holds the parsed RIFF/WAV header fields.
type WAVHeader struct {
	SampleRate    uint32
	BitsPerSample uint16
	NumChannels   uint16
	NumSamples    int // frames, i.e. samples per channel
}

// ErrNotWAV is returned for input that is not a RIFF/WAVE stream.
var ErrNotWAV = errors.New("not a RIFF/WAVE file")

// ReadWAV reads a PCM WAV stream and returns mono float64 samples in [-1.0, 1.0].
// Multi-channel audio is averaged to mono. 8, 16, 24 and 32-bit integer PCM
// are supported; the sample rate is reported but not constrained.
func ReadWAV(r io.ReadSeeker) ([]float64, WAVHeader, error) {
	var header WAVHeader

	// Read RIFF header
	var riffID [4]byte
	if err := binary.Read(r, binary.LittleEndian, &riffID); err != nil {
		return nil, header, fmt.Errorf("read RIFF ID: %w", err)
	}
	if string(riffID[:]) != "RIFF" {
		return nil, header, ErrNotWAV
	}

	var fileSize uint32
	if err := binary.Read(r, binary.LittleEndian, &fileSize); err != nil {
		return nil, header, fmt.Errorf("read file size: %w", err)
	}

	var waveID [4]byte
	if err := binary.Read(r, binary.LittleEndian, &waveID); err != nil {
		return nil, header, fmt.Errorf("read WAVE ID: %w", err)
	}
	if string(waveID[:]) != "WAVE" {
		return nil, header, ErrNotWAV
	}

	// Read chunks
	var fmtFound, dataFound bool
	var samples []float64

	for {
		var chunkID [4]byte
		if err := binary.Read(r, binary.LittleEndian, &chunkID); err != nil {
			if errors.Is(err, io.EOF) || errors.Is(err, io.ErrUnexpectedEOF) {
				break
			}
			return nil, header, fmt.Errorf("read chunk ID: %w", err)
		}

		var chunkSize uint32
		if err := binary.Read(r, binary.LittleEndian, &chunkSize); err != nil {
			return nil, header, fmt.Errorf("read chunk size: %w", err)
		}

		switch string(chunkID[:]) {
		case "fmt ":
			if err := readFmtChunk(r, chunkSize, &header); err != nil {
				return nil, header, err
			}
			fmtFound = true

		case "data":
			if !fmtFound {
				return nil, header, errors.New("data chunk before fmt chunk")
			}
			var err error
			samples, err = readDataChunk(r, chunkSize, &header)
			if err != nil {
				return nil, header, err
			}
			dataFound = true

		default:
			// Skip unknown chunks; align to even boundary
			skip := int64(chunkSize)
			if chunkSize%2 != 0 {
				skip++
			}
			if _, err := r.Seek(skip, io.SeekCurrent); err != nil {
				return nil, header, fmt.Errorf("skip chunk %q: %w", chunkID, err)
			}
		}

		if fmtFound && dataFound {
			break
		}
	}

	if !fmtFound {
		return nil, header, errors.New("missing fmt chunk")
	}
	if !dataFound {
		return nil, header, errors.New("missing data chunk")
	}

	return samples, header, nil
}

// ReadWAVFile is a convenience wrapper that opens a file path.
func ReadWAVFile(path string) ([]float64, WAVHeader, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, WAVHeader{}, err
	}
	defer f.Close()
	return ReadWAV(f)
}

func readFmtChunk(r io.ReadSeeker, size uint32, h *WAVHeader) error {
	if size < 16 {
		return fmt.Errorf("fmt chunk too small (%d bytes)", size)
	}

	var audioFormat uint16
	if err := binary.Read(r, binary.LittleEndian, &audioFormat); err != nil {
		return fmt.Errorf("read audio format: %w", err)
	}
	// 0xFFFE is WAVE_FORMAT_EXTENSIBLE; integer PCM is assumed for it.
	if audioFormat != 1 && audioFormat != 0xFFFE {
		return fmt.Errorf("unsupported audio format %d (only PCM supported)", audioFormat)
	}

	if err := binary.Read(r, binary.LittleEndian, &h.NumChannels); err != nil {
		return fmt.Errorf("read num channels: %w", err)
	}
	if h.NumChannels == 0 {
		return errors.New("zero channels")
	}

	if err := binary.Read(r, binary.LittleEndian, &h.SampleRate); err != nil {
		return fmt.Errorf("read sample rate: %w", err)
	}

	// Skip byteRate (4 bytes) and blockAlign (2 bytes)
	if _, err := r.Seek(6, io.SeekCurrent); err != nil {
		return fmt.Errorf("skip byte rate / block align: %w", err)
	}

	if err := binary.Read(r, binary.LittleEndian, &h.BitsPerSample); err != nil {
		return fmt.Errorf("read bits per sample: %w", err)
	}
	switch h.BitsPerSample {
	case 8, 16, 24, 32:
	default:
		return fmt.Errorf("unsupported bits per sample %d", h.BitsPerSample)
	}

	// Skip any extra fmt bytes
	consumed := uint32(16) // audioFormat(2) + numChannels(2) + sampleRate(4) + byteRate(4) + blockAlign(2) + bitsPerSample(2)
	if size > consumed {
		skip := int64(size - consumed)
		if size%2 != 0 {
			skip++
		}
		if _, err := r.Seek(skip, io.SeekCurrent); err != nil {
			return fmt.Errorf("skip extra fmt bytes: %w", err)
		}
	}

	return nil
}

func readDataChunk(r io.Reader, size uint32, h *WAVHeader) ([]float64, error) {
	bytesPerSample := int(h.BitsPerSample) / 8
	channels := int(h.NumChannels)
	frameSize := bytesPerSample * channels
	numFrames := int(size) / frameSize
	h.NumSamples = numFrames

	raw := make([]byte, numFrames*frameSize)
	if _, err := io.ReadFull(r, raw); err != nil {
		return nil, fmt.Errorf("read PCM data: %w", err)
	}

	samples := make([]float64, numFrames)
	for i := 0; i < numFrames; i++ {
		var sum float64
		for c := 0; c < channels; c++ {
			off := i*frameSize + c*bytesPerSample
			sum += decodeSample(raw[off:off+bytesPerSample], h.BitsPerSample)
		}
		samples[i] = sum / float64(channels)
	}

	return samples, nil
}

// decodeSample converts one little-endian integer PCM sample to [-1.0, 1.0].
func decodeSample(b []byte, bits uint16) float64 {
	switch bits {
	case 8:
		// 8-bit PCM is unsigned
		return (float64(b[0]) - 128) / 128.0
	case 16:
		return float64(int16(binary.LittleEndian.Uint16(b))) / 32768.0
	case 24:
		v := int32(b[0]) | int32(b[1])<<8 | int32(b[2])<<16
		if v&0x800000 != 0 {
			v |= ^0xFFFFFF
		}
		return float64(v) / 8388608.0
	case 32:
		return float64(int32(binary.LittleEndian.Uint32(b))) / 2147483648.0
	}
	return 0
}
