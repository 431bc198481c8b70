// Package timewords spells clock times in Russian, in a formal register
// ("пять час+ов дв+адцать мин+ут") and a spoken one ("без дв+адцать мин+ут шесть").
//
// All tables are read-only and every function is safe for concurrent use.
package timewords
