package segments_test

import (
	"fmt"

	"github.com/geofduf/intensity/segments"
)

func ExampleSegments_Add() {
	var s segments.Segments[int]

	s.Add(10, 30, 1)
	fmt.Println(s.String())
	s.Add(20, 40, 1)
	fmt.Println(s.String())
	s.Add(10, 40, -2)
	fmt.Println(s.String())
	// Output:
	// [[10,1],[30,0]]
	// [[10,1],[20,2],[30,1],[40,0]]
	// [[10,-1],[20,0],[30,-1],[40,0]]
}

func ExampleSegments_Set() {
	var s segments.Segments[int]

	s.Add(0, 100, 1)
	s.Set(20, 60, 5)
	s.Set(40, 80, 0)
	fmt.Println(s.String())

	for _, r := range s.Runs() {
		fmt.Printf("[%d, %d) %d\n", r.From, r.To, r.Value)
	}
	// Output:
	// [[0,1],[20,5],[40,0],[80,1],[100,0]]
	// [0, 20) 1
	// [20, 40) 5
	// [80, 100) 1
}

func ExampleStore_Batch() {
	store := segments.NewStore[int]()
	store.New("cpu")

	report, err := store.Batch([]segments.Statement[int]{
		{Key: "cpu", Type: segments.StatementAdd, From: 0, To: 10, Amount: 2},
		{Key: "gpu", Type: segments.StatementAdd, From: 0, To: 10, Amount: 2},
		{Key: "cpu", Type: segments.StatementSet, From: 5, To: 15, Amount: 1},
	})
	if err != nil {
		fmt.Println(err)
		for _, line := range report {
			fmt.Println(line)
		}
	}

	s, _ := store.Get("cpu")
	fmt.Println(s.String())
	// Output:
	// 1 of 3 statements could not be completed
	// at index 1: key "gpu": key does not exist
	// [[0,2],[5,1],[15,0]]
}
