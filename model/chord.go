package model

type Notes = []uint8
