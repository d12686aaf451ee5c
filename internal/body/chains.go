package body

// Anatomical joint chains used by the measurement layer. Each chain is an
// ordered sequence of adjacent joints; chain length is the sum of distances
// between consecutive pairs.

// UpperBodyChain runs from the head down to the hip centre.
var UpperBodyChain = []JointType{JointHead, JointNeck, JointSpine, JointHipCenter}

// LeftLegChain runs from the left hip down to the left foot.
var LeftLegChain = []JointType{JointHipLeft, JointKneeLeft, JointAnkleLeft, JointFootLeft}

// RightLegChain runs from the right hip down to the right foot.
var RightLegChain = []JointType{JointHipRight, JointKneeRight, JointAnkleRight, JointFootRight}

// LeftArmChain runs from the left shoulder down to the left hand.
var LeftArmChain = []JointType{JointShoulderLeft, JointElbowLeft, JointWristLeft, JointHandLeft}

// RightArmChain runs from the right shoulder down to the right hand.
var RightArmChain = []JointType{JointShoulderRight, JointElbowRight, JointWristRight, JointHandRight}
