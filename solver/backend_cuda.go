// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

//go:build cuda

package solver

/*
#cgo LDFLAGS: -lcudart -lcublas
#include <cuda_runtime.h>
#include <cublas_v2.h>
*/
import "C"

import (
	"unsafe"
)

// gpuBackend multiplies on the device through cuBLAS. Matrices are staged
// row-major on the host and handed to GEMM with swapped operands so that the
// column-major device result lands back row-major
type gpuBackend[T Float] struct {
	h C.cublasHandle_t
}

func newGPUBackend[T Float]() (Backend[T], error) {
	var h C.cublasHandle_t
	if st := C.cublasCreate(&h); st != C.CUBLAS_STATUS_SUCCESS {
		return nil, cfgErr("cannot create cuBLAS handle (status %d)", int(st))
	}
	return &gpuBackend[T]{h: h}, nil
}

func (o *gpuBackend[T]) Name() string { return "gpu" }

func (o *gpuBackend[T]) Mul(c, a, b [][]T) {
	switch cc := any(c).(type) {
	case [][]float64:
		gemm64(o.h, cc, any(a).([][]float64), any(b).([][]float64))
	case [][]float32:
		gemm32(o.h, cc, any(a).([][]float32), any(b).([][]float32))
	}
}

// gemm64 computes c = a·b in double precision on the device
func gemm64(h C.cublasHandle_t, c, a, b [][]float64) {
	m, k, n := len(a), len(a[0]), len(b[0])
	fa := flatten64(a, k)
	fb := flatten64(b, n)
	fc := make([]float64, m*n)

	var da, db, dc unsafe.Pointer
	C.cudaMalloc(&da, C.size_t(len(fa)*8))
	C.cudaMalloc(&db, C.size_t(len(fb)*8))
	C.cudaMalloc(&dc, C.size_t(len(fc)*8))
	defer C.cudaFree(da)
	defer C.cudaFree(db)
	defer C.cudaFree(dc)
	C.cudaMemcpy(da, unsafe.Pointer(&fa[0]), C.size_t(len(fa)*8), C.cudaMemcpyHostToDevice)
	C.cudaMemcpy(db, unsafe.Pointer(&fb[0]), C.size_t(len(fb)*8), C.cudaMemcpyHostToDevice)

	alpha, beta := C.double(1), C.double(0)
	C.cublasDgemm(h, C.CUBLAS_OP_N, C.CUBLAS_OP_N,
		C.int(n), C.int(m), C.int(k),
		&alpha, (*C.double)(db), C.int(n), (*C.double)(da), C.int(k),
		&beta, (*C.double)(dc), C.int(n))

	C.cudaMemcpy(unsafe.Pointer(&fc[0]), dc, C.size_t(len(fc)*8), C.cudaMemcpyDeviceToHost)
	for i := 0; i < m; i++ {
		copy(c[i][:n], fc[i*n:(i+1)*n])
	}
}

// gemm32 computes c = a·b in single precision on the device
func gemm32(h C.cublasHandle_t, c, a, b [][]float32) {
	m, k, n := len(a), len(a[0]), len(b[0])
	fa := flatten32(a, k)
	fb := flatten32(b, n)
	fc := make([]float32, m*n)

	var da, db, dc unsafe.Pointer
	C.cudaMalloc(&da, C.size_t(len(fa)*4))
	C.cudaMalloc(&db, C.size_t(len(fb)*4))
	C.cudaMalloc(&dc, C.size_t(len(fc)*4))
	defer C.cudaFree(da)
	defer C.cudaFree(db)
	defer C.cudaFree(dc)
	C.cudaMemcpy(da, unsafe.Pointer(&fa[0]), C.size_t(len(fa)*4), C.cudaMemcpyHostToDevice)
	C.cudaMemcpy(db, unsafe.Pointer(&fb[0]), C.size_t(len(fb)*4), C.cudaMemcpyHostToDevice)

	alpha, beta := C.float(1), C.float(0)
	C.cublasSgemm(h, C.CUBLAS_OP_N, C.CUBLAS_OP_N,
		C.int(n), C.int(m), C.int(k),
		&alpha, (*C.float)(db), C.int(n), (*C.float)(da), C.int(k),
		&beta, (*C.float)(dc), C.int(n))

	C.cudaMemcpy(unsafe.Pointer(&fc[0]), dc, C.size_t(len(fc)*4), C.cudaMemcpyDeviceToHost)
	for i := 0; i < m; i++ {
		copy(c[i][:n], fc[i*n:(i+1)*n])
	}
}

func flatten64(m [][]float64, ncol int) []float64 {
	f := make([]float64, len(m)*ncol)
	for i, row := range m {
		copy(f[i*ncol:], row[:ncol])
	}
	return f
}

func flatten32(m [][]float32, ncol int) []float32 {
	f := make([]float32, len(m)*ncol)
	for i, row := range m {
		copy(f[i*ncol:], row[:ncol])
	}
	return f
}
