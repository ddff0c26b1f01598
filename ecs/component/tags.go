package component

type PlayerTag struct{}

var PlayerTagComponent = NewComponent[PlayerTag]()

type CameraTag struct{}

var CameraTagComponent = NewComponent[CameraTag]()

type SoundBoardTag struct{}

var SoundBoardTagComponent = NewComponent[SoundBoardTag]()

type HUDTag struct{}

var HUDTagComponent = NewComponent[HUDTag]()
