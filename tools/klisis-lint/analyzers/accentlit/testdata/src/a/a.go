package a

var endings = []string{"ος", "ον", "ου", "ῳ"}

var articles = []string{"ὁ", "τον", "του", "τῳ"}

var accented = "λόγος" // want `literal contains pitch accent U\+0301`

var circumflex = 'ῷ' // want `literal contains pitch accent U\+0342`

var decomposed = "λόγος" // want `literal is not NFC-normalized`

var escaped = "\u0301"

var latin = "nom,gen,gender"
