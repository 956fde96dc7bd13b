// Package fuzztests houses Go fuzz harnesses for the lexical front end. Its
// goal is to guard against panics, stream invariant violations and
// allocator explosions on arbitrary inputs.
//
// Назначение: прогонять произвольные байты через source.Reader и лексер.
//
// Не делает: генерацию корпусов, запись файлов, выполнение CLI.
package fuzztests
