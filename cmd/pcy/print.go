package main

import (
	"fmt"
	"io"

	"github.com/kwertop/pcy/apriori"
)

func printResult(w io.Writer, result *apriori.Result, allLevels bool) error {
	if _, err := fmt.Fprintf(w, "Frequent Item Sets with threshold: %d\n", result.Threshold); err != nil {
		return err
	}
	if !result.Found() {
		_, err := fmt.Fprintf(w, "no frequent itemsets found (%s)\n", result.Outcome)
		return err
	}
	levels := []apriori.Level{result.Final()}
	if allLevels {
		levels = result.Levels
	}
	for _, level := range levels {
		if err := printLevel(w, level); err != nil {
			return err
		}
	}
	return nil
}

func printLevel(w io.Writer, level apriori.Level) error {
	if _, err := fmt.Fprintf(w, "level %d: %d frequent itemsets\n", level.K, len(level.Sets)); err != nil {
		return err
	}
	for _, set := range level.Sets {
		if _, err := fmt.Fprintf(w, "%v support=%d\n", set.Items, set.Support); err != nil {
			return err
		}
	}
	return nil
}
