// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package fat

import (
	"math/cmplx"

	"github.com/cpmech/gosl/chk"
	"github.com/mjibson/go-dsp/fft"
	"gonum.org/v1/gonum/floats"
)

// DominantFrequency estimates the dominant frequency [Hz] of a (possibly
// non-uniformly sampled) history by resampling onto a uniform grid and taking
// the peak magnitude bin of the real FFT. Hosts use this to convert
// block damage into damage per second
func DominantFrequency(time, s []float64) (freq float64, err error) {
	n := len(s)
	if n < 4 {
		return 0, chk.Err("dominant frequency needs at least 4 samples; got %d", n)
	}
	if len(time) != n {
		return 0, chk.Err("time vector has %d stations but the series has %d samples", len(time), n)
	}
	span := time[n-1] - time[0]
	if span <= 0 {
		return 0, chk.Err("time vector must span a positive interval")
	}
	dt := span / float64(n-1)

	// resample onto the uniform grid by linear interpolation
	y := make([]float64, n)
	k := 0
	for i := 0; i < n; i++ {
		t := time[0] + float64(i)*dt
		for k < n-2 && time[k+1] < t {
			k++
		}
		w := (t - time[k]) / (time[k+1] - time[k])
		if w < 0 {
			w = 0
		}
		if w > 1 {
			w = 1
		}
		y[i] = (1.0-w)*s[k] + w*s[k+1]
	}

	spec := fft.FFTReal(y)
	half := n / 2
	mag := make([]float64, half) // skip the DC bin
	for i := 1; i <= half; i++ {
		mag[i-1] = cmplx.Abs(spec[i])
	}
	kmax := floats.MaxIdx(mag) + 1
	return float64(kmax) / (float64(n) * dt), nil
}
