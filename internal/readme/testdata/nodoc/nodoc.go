package nodoc

const Value = 1
